package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	accountPrefix  = "accounts/"
	locationPrefix = "locations/"
	reviewPrefix   = "reviews/"
)

// GoogleAccount is a Business Profile account, either fetched live or read from the local cache.
type GoogleAccount struct {
	ID          uuid.UUID // cache row id, zero for live results
	UserID      uuid.UUID
	Name        string // resource name, "accounts/{id}"
	AccountID   string
	AccountName string
	Type        string
	Role        string
	CreatedAt   time.Time
}

// Location is a Business Profile location.
type Location struct {
	ID              uuid.UUID // cache row id, zero for live results
	GoogleAccountID uuid.UUID
	Name            string // resource name, "locations/{id}"
	LocationID      string
	Title           string
	Address         string
	Phone           string
	Website         string
	Status          string // OPEN, CLOSED_TEMPORARILY, CLOSED_PERMANENTLY, ...
	CreatedAt       time.Time
}

// AccountResource returns the "accounts/{id}" resource name.
func AccountResource(id string) string {
	if strings.HasPrefix(id, accountPrefix) {
		return id
	}

	return accountPrefix + id
}

// LocationResource returns the "locations/{id}" resource name.
func LocationResource(id string) string {
	if strings.HasPrefix(id, locationPrefix) {
		return id
	}

	return locationPrefix + id
}

// ReviewResource returns the "reviews/{id}" resource name.
func ReviewResource(id string) string {
	if strings.HasPrefix(id, reviewPrefix) {
		return id
	}

	return reviewPrefix + id
}

// BareID strips any resource prefix, "accounts/1/locations/2" becomes "2".
func BareID(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[i+1:]
	}

	return name
}
