package state

import (
	"database/sql"
	"errors"
)

// RadioState is the position and volume restored at startup.
type RadioState struct {
	ChannelIndex int
	ChannelID    string
	Volume       int // -1 when never saved
}

func getRadio(db *sql.DB) (*RadioState, error) {
	row := db.QueryRow(`
		SELECT channel_index, channel_id, volume FROM radio_state WHERE id = 1
	`)

	var s RadioState
	var channelID sql.NullString
	var volume sql.NullInt64
	err := row.Scan(&s.ChannelIndex, &channelID, &volume)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	s.ChannelID = channelID.String
	s.Volume = -1
	if volume.Valid {
		s.Volume = int(volume.Int64)
	}
	return &s, nil
}

func saveRadio(db *sql.DB, s RadioState) error {
	var volume sql.NullInt64
	if s.Volume >= 0 {
		volume = sql.NullInt64{Int64: int64(s.Volume), Valid: true}
	}
	_, err := db.Exec(`
		INSERT INTO radio_state (id, channel_index, channel_id, volume)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			channel_index = excluded.channel_index,
			channel_id = excluded.channel_id,
			volume = excluded.volume
	`, s.ChannelIndex, nullString(s.ChannelID), volume)
	return err
}

// Resolve returns the index to resume in channels. The saved id wins over
// the saved index so that edits to the channel list keep the position.
// ok is false when nothing usable was saved.
func (s *RadioState) Resolve(channels []string) (int, bool) {
	if s == nil || len(channels) == 0 {
		return 0, false
	}
	if s.ChannelID != "" {
		for i, id := range channels {
			if id == s.ChannelID {
				return i, true
			}
		}
		return 0, false
	}
	if s.ChannelIndex >= 0 && s.ChannelIndex < len(channels) {
		return s.ChannelIndex, true
	}
	return 0, false
}
