package domain

// DirectoryUser is one entry from the external random-user API. Only the
// fields the directory listing filters and displays are decoded.
type DirectoryUser struct {
	Gender string `json:"gender"`
	Name   struct {
		First string `json:"first"`
		Last  string `json:"last"`
	} `json:"name"`
	Email string `json:"email"`
}

// DirectoryPage is one page of the user-directory listing.
type DirectoryPage struct {
	Users    []DirectoryUser `json:"users"`
	Page     int             `json:"page"`
	PerPage  int             `json:"per_page"`
	Total    int             `json:"total"`
	LastPage int             `json:"last_page"`
}
