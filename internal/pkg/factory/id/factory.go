package id

import "github.com/google/uuid"

type IDFactory struct{}

func New() *IDFactory {
	return &IDFactory{}
}

func (f *IDFactory) NewID() string {
	return uuid.NewString()
}
