package services

import (
	"testing"

	"plateful/entity"
	"plateful/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketClosesOnlyOnce(t *testing.T) {
	db := newTestDB(t)
	user := mkUser(t, db, "customer")
	svc := NewSupportService(repository.NewSupportRepository(db))

	tk, err := svc.Open(user.ID, &TicketIn{Subject: "cold food", Body: "the order arrived cold"})
	require.NoError(t, err)
	assert.Equal(t, entity.TicketOpen, tk.Status)

	require.NoError(t, svc.Close(tk.ID, "refunded"))
	err = svc.Close(tk.ID, "again")
	assert.ErrorIs(t, err, ErrConflict)

	var got entity.SupportTicket
	require.NoError(t, db.First(&got, tk.ID).Error)
	assert.Equal(t, entity.TicketClosed, got.Status)
	assert.Equal(t, "refunded", got.Reply)
}

func TestTicketListsScopedToUser(t *testing.T) {
	db := newTestDB(t)
	a := mkUser(t, db, "customer")
	b := mkUser(t, db, "customer")
	svc := NewSupportService(repository.NewSupportRepository(db))

	_, err := svc.Open(a.ID, &TicketIn{Subject: "s1", Body: "b1"})
	require.NoError(t, err)
	_, err = svc.Open(b.ID, &TicketIn{Subject: "s2", Body: "b2"})
	require.NoError(t, err)

	mine, err := svc.ListForUser(a.ID, 10)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "s1", mine[0].Subject)

	all, err := svc.ListAll("", 10, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	open, err := svc.ListAll(string(entity.TicketOpen), 10, 0)
	require.NoError(t, err)
	assert.Len(t, open, 2)
}
