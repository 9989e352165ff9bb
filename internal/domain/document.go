package domain

// Document is the in-memory form of one bragfile. It exclusively owns
// its users; users own their goals and sessions. The whole model is
// rebuilt from raw text on every command invocation.
type Document struct {
	Users []*User
}

// FindUser returns the user with the given name (case-insensitive), or nil.
func (d *Document) FindUser(name string) *User {
	key := (&User{Name: name}).NameKey()
	for _, u := range d.Users {
		if u.NameKey() == key {
			return u
		}
	}
	return nil
}

// AddUser appends a user to the document.
func (d *Document) AddUser(u *User) {
	d.Users = append(d.Users, u)
}

// Empty reports whether the document holds no users.
func (d *Document) Empty() bool {
	return len(d.Users) == 0
}

func (d *Document) Clone() *Document {
	c := &Document{Users: make([]*User, 0, len(d.Users))}
	for _, u := range d.Users {
		c.Users = append(c.Users, u.Clone())
	}
	return c
}
