package handler

import (
	"time"

	"nativoseo/internal/domain/entity"

	"github.com/google/uuid"
)

// MessageResponse is a plain confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// AuthURLResponse carries the Google consent URL.
type AuthURLResponse struct {
	AuthURL string `json:"auth_url"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// TokenResponse is the session token issued by /auth/token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in,omitempty"`
}

// LiveAccount mirrors the upstream account resource.
type LiveAccount struct {
	Name        string `json:"name"`
	AccountName string `json:"accountName"`
	Type        string `json:"type,omitempty"`
	Role        string `json:"role,omitempty"`
}

// LiveAddress is the formatted storefront address.
type LiveAddress struct {
	FormattedAddress string `json:"formattedAddress"`
}

// LivePhoneNumbers holds the primary phone.
type LivePhoneNumbers struct {
	PrimaryPhone string `json:"primaryPhone"`
}

// LiveLocation mirrors the upstream location resource.
type LiveLocation struct {
	Name              string            `json:"name"`
	Title             string            `json:"title"`
	StorefrontAddress *LiveAddress      `json:"storefrontAddress,omitempty"`
	PhoneNumbers      *LivePhoneNumbers `json:"phoneNumbers,omitempty"`
	WebsiteURI        string            `json:"websiteUri,omitempty"`
	BusinessStatus    string            `json:"businessStatus,omitempty"`
}

func newLiveAccounts(accounts []*entity.GoogleAccount) []LiveAccount {
	out := make([]LiveAccount, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, LiveAccount{
			Name:        entity.AccountResource(a.AccountID),
			AccountName: a.AccountName,
			Type:        a.Type,
			Role:        a.Role,
		})
	}

	return out
}

func newLiveLocations(locations []*entity.Location) []LiveLocation {
	out := make([]LiveLocation, 0, len(locations))
	for _, l := range locations {
		live := LiveLocation{
			Name:           entity.LocationResource(l.LocationID),
			Title:          l.Title,
			WebsiteURI:     l.Website,
			BusinessStatus: l.Status,
		}
		if l.Address != "" {
			live.StorefrontAddress = &LiveAddress{FormattedAddress: l.Address}
		}
		if l.Phone != "" {
			live.PhoneNumbers = &LivePhoneNumbers{PrimaryPhone: l.Phone}
		}
		out = append(out, live)
	}

	return out
}

// GoogleAccountResponse is a cached account row.
type GoogleAccountResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	AccountID   string    `json:"account_id"`
	AccountName string    `json:"account_name"`
	AccountType string    `json:"account_type,omitempty"`
	AccountRole string    `json:"account_role,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func newGoogleAccountResponses(accounts []*entity.GoogleAccount) []GoogleAccountResponse {
	out := make([]GoogleAccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, GoogleAccountResponse{
			ID:          a.ID,
			UserID:      a.UserID,
			AccountID:   a.AccountID,
			AccountName: a.AccountName,
			AccountType: a.Type,
			AccountRole: a.Role,
			CreatedAt:   a.CreatedAt,
		})
	}

	return out
}

// LocationResponse is a cached location row.
type LocationResponse struct {
	ID              uuid.UUID `json:"id"`
	GoogleAccountID uuid.UUID `json:"google_account_id"`
	LocationID      string    `json:"location_id"`
	LocationName    string    `json:"location_name"`
	Address         string    `json:"address,omitempty"`
	PhoneNumber     string    `json:"phone_number,omitempty"`
	Website         string    `json:"website,omitempty"`
	BusinessStatus  string    `json:"business_status,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func newLocationResponses(locations []*entity.Location) []LocationResponse {
	out := make([]LocationResponse, 0, len(locations))
	for _, l := range locations {
		out = append(out, LocationResponse{
			ID:              l.ID,
			GoogleAccountID: l.GoogleAccountID,
			LocationID:      l.LocationID,
			LocationName:    l.Title,
			Address:         l.Address,
			PhoneNumber:     l.Phone,
			Website:         l.Website,
			BusinessStatus:  l.Status,
			CreatedAt:       l.CreatedAt,
		})
	}

	return out
}

// ActiveLocationResponse is one entry of the active-location set.
type ActiveLocationResponse struct {
	ID           uuid.UUID `json:"id"`
	AccountID    string    `json:"account_id"`
	LocationID   string    `json:"location_id"`
	LocationName string    `json:"location_name"`
	ActivatedAt  time.Time `json:"activated_at"`
}

func newActiveLocationResponse(l *entity.ActiveLocation) ActiveLocationResponse {
	return ActiveLocationResponse{
		ID:           l.ID,
		AccountID:    l.AccountID,
		LocationID:   l.LocationID,
		LocationName: l.LocationName,
		ActivatedAt:  l.ActivatedAt,
	}
}
