package database

import (
	"context"
	"database/sql"

	"github.com/xavierca1/prospecta/internal/entity"
)

type MeetingRepository struct {
	DB *sql.DB
}

func NewMeetingRepository(db *sql.DB) *MeetingRepository {
	return &MeetingRepository{DB: db}
}

func (r *MeetingRepository) FindByLeadID(ctx context.Context, leadID string) ([]*entity.Meeting, error) {
	query := `
		SELECT id, lead_id, scheduled_time, meeting_link, status
		FROM meetings
		WHERE lead_id = $1
		ORDER BY scheduled_time ASC
	`

	rows, err := r.DB.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meetings []*entity.Meeting
	for rows.Next() {
		var meeting entity.Meeting
		var link sql.NullString

		err := rows.Scan(
			&meeting.ID,
			&meeting.LeadID,
			&meeting.ScheduledTime,
			&link,
			&meeting.Status,
		)
		if err != nil {
			return nil, err
		}

		meeting.MeetingLink = link.String
		meetings = append(meetings, &meeting)
	}

	return meetings, rows.Err()
}
