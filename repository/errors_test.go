package repository_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/muhammadheryan/car-market/repository"
)

func TestMapError(t *testing.T) {
	other := errors.New("connection reset")
	missingTable := &mysql.MySQLError{Number: 1146}
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil", err: nil, want: nil},
		{name: "duplicate entry", err: &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}, want: repository.ErrDuplicate},
		{name: "wrapped duplicate entry", err: fmt.Errorf("exec: %w", &mysql.MySQLError{Number: 1062}), want: repository.ErrDuplicate},
		{name: "other mysql error", err: missingTable, want: missingTable},
		{name: "other error", err: other, want: other},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := repository.MapError(tt.err)
			if got != tt.want {
				t.Fatalf("MapError() = %v, want %v", got, tt.want)
			}
		})
	}
}
