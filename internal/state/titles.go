package state

import (
	"database/sql"
	"time"
)

// ChannelTitle is the last known title of a livestream.
type ChannelTitle struct {
	VideoID   string
	Title     string
	Author    string
	UpdatedAt time.Time
}

// SaveTitle records the title of a channel.
func (m *Manager) SaveTitle(t ChannelTitle) error {
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = time.Now()
	}
	_, err := m.db.Exec(`
		INSERT INTO channel_titles (video_id, title, author, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(video_id) DO UPDATE SET
			title = excluded.title,
			author = excluded.author,
			updated_at = excluded.updated_at
	`, t.VideoID, t.Title, nullString(t.Author), t.UpdatedAt.Unix())
	return err
}

// Titles returns all remembered titles keyed by video id.
func (m *Manager) Titles() (map[string]ChannelTitle, error) {
	rows, err := m.db.Query(`
		SELECT video_id, title, author, updated_at FROM channel_titles
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	titles := make(map[string]ChannelTitle)
	for rows.Next() {
		var t ChannelTitle
		var author sql.NullString
		var updated int64
		if err := rows.Scan(&t.VideoID, &t.Title, &author, &updated); err != nil {
			return nil, err
		}
		t.Author = author.String
		t.UpdatedAt = time.Unix(updated, 0)
		titles[t.VideoID] = t
	}
	return titles, rows.Err()
}

// PruneTitles forgets titles of channels not in keep and returns how many
// were removed.
func (m *Manager) PruneTitles(keep []string) (int, error) {
	removed := 0
	err := withTx(m.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`CREATE TEMP TABLE IF NOT EXISTS keep_ids (video_id TEXT PRIMARY KEY)`); err != nil {
			return err
		}
		if _, err := tx.Exec(`DELETE FROM keep_ids`); err != nil {
			return err
		}
		for _, id := range keep {
			if _, err := tx.Exec(`INSERT OR IGNORE INTO keep_ids (video_id) VALUES (?)`, id); err != nil {
				return err
			}
		}
		res, err := tx.Exec(`DELETE FROM channel_titles WHERE video_id NOT IN (SELECT video_id FROM keep_ids)`)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		removed = int(n)
		return err
	})
	return removed, err
}
