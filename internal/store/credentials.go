package store

import "sort"

// Credentials maps a credential name to its password.
type Credentials map[string]string

// Get returns the password stored under name.
func (c Credentials) Get(name string) (string, bool) {
	password, ok := c[name]
	return password, ok
}

// Set stores password under name and reports whether it replaced an
// existing entry.
func (c Credentials) Set(name, password string) bool {
	_, existed := c[name]
	c[name] = password
	return existed
}

// Delete removes name and reports whether it was present.
func (c Credentials) Delete(name string) bool {
	if _, ok := c[name]; !ok {
		return false
	}
	delete(c, name)
	return true
}

// Names returns every credential name in sorted order.
func (c Credentials) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
