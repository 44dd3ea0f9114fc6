package postgres

import (
	"context"
	"time"

	"github.com/dac-os/auth/internal/domain/entity"
	"github.com/dac-os/auth/internal/domain/repository"
	"github.com/dac-os/auth/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// SessionStore keeps session tokens in the 'session_tokens' table.
// Rows past expires_at are treated as absent and removed by DeleteExpired.
type SessionStore struct {
	db *gorm.DB
}

// NewSessionStore is the constructor for SessionStore.
func NewSessionStore(db *gorm.DB) *SessionStore {
	return &SessionStore{db: db}
}

var _ repository.SessionStore = (*SessionStore)(nil)

// Save stores the token. Re-issuing an identical token overwrites the previous row.
func (s *SessionStore) Save(ctx context.Context, token *entity.SessionToken) error {
	tokenM := &model.SessionTokenModel{
		Token:     token.Token,
		AccountID: token.AccountID,
		ExpiresAt: token.ExpiresAt,
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{"account_id", "expires_at"}),
		}).
		Create(tokenM).Error
	if err != nil {
		return errors.Wrap(err, "failed to save session token")
	}

	return nil
}

// Find returns the live token row. It reads from the primary so a token is visible right after Save.
func (s *SessionStore) Find(ctx context.Context, token string) (*entity.SessionToken, error) {
	var tokenM model.SessionTokenModel
	err := s.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("token = ? AND expires_at > ?", token, time.Now()).
		Take(&tokenM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find session token")
	}

	return &entity.SessionToken{
		Token:     tokenM.Token,
		AccountID: tokenM.AccountID,
		ExpiresAt: tokenM.ExpiresAt,
	}, nil
}

// DeleteExpired removes every row that expired before now and reports how many went.
func (s *SessionStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := s.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&model.SessionTokenModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired session tokens")
	}

	return result.RowsAffected, nil
}
