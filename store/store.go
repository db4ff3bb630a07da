// Package store persists named collections as whole JSON arrays, the way the
// storefront's toy database works: one file per collection, read and written
// in full, keyed by nothing smarter than the record's id field.
package store

import (
	"errors"
	"fmt"
	"log"
	"reflect"
)

// Collection names used across the storefront.
const (
	Users    = "users"
	Products = "products"
	Orders   = "orders"
	Contacts = "contacts"
)

// Store loads and saves whole collections. Load fills out (a pointer to a
// slice of records) and leaves it empty when the collection does not exist
// yet. Save replaces the collection in full; there are no partial writes.
type Store interface {
	Load(collection string, out any) error
	Save(collection string, records any) error
}

// ParseError reports a collection that exists but cannot be decoded. Callers
// decide what to do with it; the storefront maps it to an empty collection
// (see LoadOrEmpty) so a corrupt file never takes a page down.
type ParseError struct {
	Collection string
	Err        error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("collection %s is unreadable: %v", e.Collection, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LoadOrEmpty loads a collection, treating an unreadable file as empty. This
// is the storefront's fail-open policy in one visible place: a corrupt
// collection logs and renders as empty rather than failing the request.
// Errors other than ParseError are returned as-is.
func LoadOrEmpty(s Store, collection string, out any) error {
	err := s.Load(collection, out)
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		log.Printf("Treating collection %s as empty: %v", collection, parseErr.Err)
		zeroSlice(out)
		return nil
	}
	return err
}

// zeroSlice resets the destination in case a failed decode left it partially
// filled.
func zeroSlice(out any) {
	v := reflect.ValueOf(out)
	if v.Kind() == reflect.Pointer && !v.IsNil() {
		v.Elem().Set(reflect.Zero(v.Elem().Type()))
	}
}
