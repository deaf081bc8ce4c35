package store

import (
	"context"

	"userdesk/internal/model"

	"github.com/samber/oops"
)

// ProfilesByUser 依 id 排序回傳某使用者的所有個人資料
func (s *UserStore) ProfilesByUser(ctx context.Context, userID int) ([]model.UserProfile, error) {
	rows, err := s.db.Query(ctx, `
SELECT id, user_id, nickname, email, location, description, created_at, updated_at
FROM user_profiles
WHERE user_id = $1
ORDER BY id`, userID)
	if err != nil {
		return nil, oops.Code("PROFILE_QUERY_FAILED").With("user_id", userID).Wrap(err)
	}
	defer rows.Close()

	profiles := []model.UserProfile{}
	for rows.Next() {
		var p model.UserProfile
		if err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.Nickname,
			&p.Email,
			&p.Location,
			&p.Description,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, oops.Code("PROFILE_QUERY_FAILED").With("user_id", userID).Wrap(err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, oops.Code("PROFILE_QUERY_FAILED").With("user_id", userID).Wrap(err)
	}
	return profiles, nil
}
