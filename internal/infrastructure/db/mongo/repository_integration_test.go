//go:build integration

package mongo

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/societyhub/society-api/internal/core/domain"
	"github.com/societyhub/society-api/internal/core/ports"
)

func setupDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, db, err := Connect(ctx, Config{URI: uri, Database: "society_test"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	return db
}

func newUser(email, role string) *domain.User {
	now := time.Now().UTC()
	return &domain.User{
		FirstName:    "A",
		LastName:     "B",
		Email:        email,
		PhoneNumber:  5551234,
		Address:      "Addr",
		PasswordHash: "hash",
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestRepositories(t *testing.T) {
	db := setupDatabase(t)
	ctx := context.Background()

	users := NewUserRepository(db)
	roles := NewRoleRepository(db)
	complaints := NewComplaintRepository(db)
	announcements := NewAnnouncementRepository(db)
	audit := NewAuditRepository(db)
	require.NoError(t, EnsureIndexes(ctx, users, roles, complaints, announcements, audit))

	for _, r := range domain.DefaultRoles {
		role := r
		require.NoError(t, roles.Upsert(ctx, &role))
	}

	t.Run("concurrent duplicate registration yields one record", func(t *testing.T) {
		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			created int
			dupes   int
		)
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := users.Create(ctx, newUser("race@b.com", domain.RoleResident))
				mu.Lock()
				defer mu.Unlock()
				if err == nil {
					created++
				} else if assert.ErrorIs(t, err, domain.ErrUserExists) {
					dupes++
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, created)
		assert.Equal(t, 7, dupes)
	})

	t.Run("role info is joined and missing roles stay nil", func(t *testing.T) {
		worker, err := users.Create(ctx, newUser("wrk@b.com", domain.RoleWorker))
		require.NoError(t, err)
		dangling, err := users.Create(ctx, newUser("ghost@b.com", "vanished"))
		require.NoError(t, err)

		got, err := users.FindByID(ctx, worker.ID)
		require.NoError(t, err)
		require.NotNil(t, got.RoleInfo)
		assert.Equal(t, "Worker", got.RoleInfo.Name)

		got, err = users.FindByID(ctx, dangling.ID)
		require.NoError(t, err)
		assert.Nil(t, got.RoleInfo)

		_, err = users.FindByID(ctx, "not-an-object-id")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("list filters by role", func(t *testing.T) {
		workers, err := users.List(ctx, []string{domain.RoleWorker})
		require.NoError(t, err)
		require.Len(t, workers, 1)
		assert.Equal(t, "wrk@b.com", workers[0].Email)

		all, err := users.List(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("profile update only touches given fields", func(t *testing.T) {
		addr := "Tower B"
		updated, err := users.UpdateProfile(ctx, "race@b.com", ports.ProfileUpdate{Address: &addr})
		require.NoError(t, err)
		assert.Equal(t, "Tower B", updated.Address)
		assert.Equal(t, int64(5551234), updated.PhoneNumber)
		assert.Equal(t, "hash", updated.PasswordHash)

		_, err = users.UpdateRole(ctx, "nobody@b.com", domain.RoleAdmin)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("complaint transitions are conditional", func(t *testing.T) {
		now := time.Now().UTC()
		c, err := complaints.Create(ctx, &domain.Complaint{
			Reference: "CMP-TEST", Title: "t", Description: "d", Category: "other",
			Status: domain.ComplaintPending, RaisedBy: "race@b.com", CreatedAt: now, UpdatedAt: now,
		})
		require.NoError(t, err)

		assigned, err := complaints.SetStatus(ctx, c.ID, domain.ComplaintPending, domain.ComplaintAssigned, "wrk@b.com")
		require.NoError(t, err)
		assert.Equal(t, "wrk@b.com", assigned.AssignedTo)

		_, err = complaints.SetStatus(ctx, c.ID, domain.ComplaintPending, domain.ComplaintRejected, "")
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)

		mine, err := complaints.List(ctx, ports.ComplaintFilter{AssignedTo: "wrk@b.com"})
		require.NoError(t, err)
		assert.Len(t, mine, 1)

		assert.ErrorIs(t, complaints.Delete(ctx, c.ID, domain.ComplaintPending), domain.ErrInvalidTransition,
			"withdrawal only applies while pending")
		require.NoError(t, complaints.Delete(ctx, c.ID, ""))
		assert.ErrorIs(t, complaints.Delete(ctx, c.ID, ""), domain.ErrComplaintNotFound)
		assert.ErrorIs(t, complaints.Delete(ctx, c.ID, domain.ComplaintPending), domain.ErrComplaintNotFound)
	})

	t.Run("announcements newest first", func(t *testing.T) {
		base := time.Now().UTC()
		for i, title := range []string{"old", "new"} {
			_, err := announcements.Create(ctx, &domain.Announcement{
				Title: title, Body: "b", Author: "adm@b.com", CreatedAt: base.Add(time.Duration(i) * time.Minute),
			})
			require.NoError(t, err)
		}
		items, err := announcements.List(ctx, 1)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "new", items[0].Title)
	})

	t.Run("audit insert", func(t *testing.T) {
		err := audit.Insert(ctx, &domain.AuditEvent{
			Subject: "race@b.com", Action: domain.AuditUserRegistered, Actor: "race@b.com", OccurredAt: time.Now(),
		})
		assert.NoError(t, err)
	})
}
