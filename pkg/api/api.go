// Package api defines the request and response messages of the
// moneymatters.v1 RPC services. Messages are encoded as JSON.
package api

// User is the public view of an account.
type User struct {
	Id    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthBundle is returned by every call that signs a user in.
type AuthBundle struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         *User  `json:"user"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type RegisterResponse struct {
	Auth *AuthBundle `json:"auth"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Auth *AuthBundle `json:"auth"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type RefreshResponse struct {
	Auth *AuthBundle `json:"auth"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type LogoutResponse struct{}

type LogoutAllRequest struct{}

type LogoutAllResponse struct{}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type ChangePasswordResponse struct{}

type GetCurrentUserRequest struct{}

type GetCurrentUserResponse struct {
	User *User `json:"user"`
}

type SearchUsersRequest struct {
	Email string `json:"email"`
}

type SearchUsersResponse struct {
	Users []*User `json:"users"`
}

// Group is a set of users sharing expenses.
type Group struct {
	Id          string  `json:"id"`
	Name        string  `json:"name"`
	CreatedById string  `json:"createdById"`
	Members     []*User `json:"members"`
	// CreatedAt is Unix seconds.
	CreatedAt int64 `json:"createdAt"`
}

type CreateGroupRequest struct {
	Name string `json:"name"`
}

type CreateGroupResponse struct {
	Group *Group `json:"group"`
}

type ListGroupsRequest struct{}

type ListGroupsResponse struct {
	Groups []*Group `json:"groups"`
}

type GetGroupRequest struct {
	GroupId string `json:"groupId"`
}

type GetGroupResponse struct {
	Group *Group `json:"group"`
}

type AddMemberRequest struct {
	GroupId string `json:"groupId"`
	UserId  string `json:"userId"`
}

type AddMemberResponse struct {
	Group *Group `json:"group"`
}

// Split is one member's share of an expense.
type Split struct {
	Id       string  `json:"id,omitempty"`
	UserId   string  `json:"userId"`
	UserName string  `json:"userName,omitempty"`
	Share    float64 `json:"share"`
	Paid     bool    `json:"paid"`
}

// Expense is a recorded expense with its splits.
type Expense struct {
	Id          string  `json:"id"`
	GroupId     string  `json:"groupId"`
	PaidById    string  `json:"paidById"`
	PaidByName  string  `json:"paidByName"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	// Date is YYYY-MM-DD.
	Date string `json:"date"`
	// CreatedAt is Unix seconds.
	CreatedAt int64    `json:"createdAt"`
	Splits    []*Split `json:"splits"`
}

type CreateExpenseRequest struct {
	GroupId     string   `json:"groupId"`
	PaidById    string   `json:"paidById"`
	Amount      float64  `json:"amount"`
	Description string   `json:"description"`
	Date        string   `json:"date,omitempty"`
	Splits      []*Split `json:"splits"`
}

type CreateExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type ListExpensesRequest struct {
	GroupId string `json:"groupId"`
}

type ListExpensesResponse struct {
	Expenses []*Expense `json:"expenses"`
}

// Balance is a member's net position: positive when the group owes them.
type Balance struct {
	UserId  string  `json:"userId"`
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
}

// Transfer is a suggested payment between two members.
type Transfer struct {
	FromUserId string  `json:"fromUserId"`
	ToUserId   string  `json:"toUserId"`
	Amount     float64 `json:"amount"`
}

type GetBalancesRequest struct {
	GroupId string `json:"groupId"`
}

type GetBalancesResponse struct {
	Balances  []*Balance  `json:"balances"`
	Transfers []*Transfer `json:"transfers"`
}

type SuggestEqualSplitRequest struct {
	GroupId string  `json:"groupId"`
	Amount  float64 `json:"amount"`
}

type SuggestEqualSplitResponse struct {
	Splits []*Split `json:"splits"`
}
