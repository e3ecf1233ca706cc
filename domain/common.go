package domain

import "errors"

const (
	RoleDonor    = "donor"
	RoleReceiver = "receiver"
	RoleAdmin    = "admin"
)

var (
	MessageFailedBodyRequest    = "failed to process request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "token invalid"
	MessageUserNotAllowed       = "user not allowed"

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrUserNotAllowed = errors.New("user not allowed")
	ErrTokenNotFound  = errors.New("token not found")
	ErrTokenInvalid   = errors.New("token invalid")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenRevoked   = errors.New("token revoked")
)

// Identity is the authenticated principal attached to every operation. The
// role is one of the Role* constants; handlers build it once from the request
// locals and services check it through small per-operation policy functions
// instead of scattering role string comparisons.
type Identity struct {
	UserID string
	Role   string
}

func (i Identity) IsAdmin() bool    { return i.Role == RoleAdmin }
func (i Identity) IsDonor() bool    { return i.Role == RoleDonor }
func (i Identity) IsReceiver() bool { return i.Role == RoleReceiver }

// Pagination is the shared page envelope: default page size 15, newest first.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

const DefaultPageSize = 15

func NewPagination(page, limit int, total int64) Pagination {
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + int64(limit) - 1) / int64(limit),
	}
}
