package util

import "os/user"

// Homedir returns the current user's home directory.
func Homedir() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return u.HomeDir, nil
}
