package entity

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

const notificationFormat = "Notification pour %s : Météo mise à jour - %s"

type User struct {
	name string
	out  io.Writer
}

// NewUser returns a subscriber printing its notifications to stdout
func NewUser(name string) *User {
	return NewUserWithWriter(name, os.Stdout)
}

func NewUserWithWriter(name string, out io.Writer) *User {
	return &User{name: name, out: out}
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Update(notification string) {
	if _, err := fmt.Fprintln(u.out, FormatNotification(u.name, notification)); err != nil {
		slog.Error("unable to print notification", "user", u.name, "error", err)
	}
}

// FormatNotification renders the line a subscriber named name receives
func FormatNotification(name, notification string) string {
	return fmt.Sprintf(notificationFormat, name, notification)
}
