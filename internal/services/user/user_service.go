package user

import "strings"

// UserService contains read logic for the account listing.
type UserService struct {
	repo *UserRepo
}

// NewUserService constructs a new UserService.
func NewUserService(repo *UserRepo) *UserService {
	return &UserService{repo: repo}
}

// List returns users matching the filter, preserving seed order.
func (s *UserService) List(f Filter) []User {
	search := strings.ToLower(f.Search)

	matched := make([]User, 0, len(s.repo.rows))
	for _, u := range s.repo.List() {
		if search != "" &&
			!strings.Contains(strings.ToLower(u.Name), search) &&
			!strings.Contains(strings.ToLower(u.Email), search) {
			continue
		}
		if f.Role != "" && u.Role != f.Role {
			continue
		}
		if f.Status != "" && u.Status != f.Status {
			continue
		}
		matched = append(matched, u)
	}

	return matched
}
