package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dealerbot/pkg"

	"github.com/bytedance/sonic"
)

// SessionArchive is a finished session's transcript with the topics
// that were classified along the way.
type SessionArchive struct {
	SessionID  string                 `json:"session_id"`
	ArchivedAt time.Time              `json:"archived_at"`
	Turns      []pkg.ConversationTurn `json:"turns"`
	Topics     []pkg.Intent           `json:"topics"`
}

// ArchiveStats summarizes an archived session.
type ArchiveStats struct {
	SessionID string       `json:"session_id"`
	TurnCount int          `json:"turn_count"`
	TopTopics []pkg.Intent `json:"top_topics"`
}

// Archiver persists session transcripts.
type Archiver interface {
	Save(archive SessionArchive) error
	Load(sessionID string) (*SessionArchive, error)
}

// JSONArchiver writes one pretty-printed JSON file per session under
// a base directory.
type JSONArchiver struct {
	baseDir string
}

func NewJSONArchiver(baseDir string) *JSONArchiver {
	return &JSONArchiver{baseDir: baseDir}
}

func (a *JSONArchiver) Save(archive SessionArchive) error {
	if archive.SessionID == "" {
		return fmt.Errorf("session ID cannot be empty")
	}

	if err := os.MkdirAll(a.baseDir, 0755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}

	data, err := sonic.MarshalIndent(archive, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session archive: %w", err)
	}

	path := a.path(archive.SessionID)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write session archive: %w", err)
	}

	return nil
}

// Load reads an archived session. A missing file yields an empty
// archive, not an error.
func (a *JSONArchiver) Load(sessionID string) (*SessionArchive, error) {
	data, err := os.ReadFile(a.path(sessionID))
	if err != nil {
		if os.IsNotExist(err) {
			return &SessionArchive{SessionID: sessionID}, nil
		}
		return nil, fmt.Errorf("failed to read session archive: %w", err)
	}

	var archive SessionArchive
	if err := sonic.Unmarshal(data, &archive); err != nil {
		return nil, fmt.Errorf("failed to parse session archive: %w", err)
	}

	return &archive, nil
}

func (a *JSONArchiver) path(sessionID string) string {
	return filepath.Join(a.baseDir, sessionID+".json")
}

// Stats counts turns and ranks topics by frequency.
func Stats(archive SessionArchive) ArchiveStats {
	stats := ArchiveStats{
		SessionID: archive.SessionID,
		TurnCount: len(archive.Turns),
	}

	counts := make(map[pkg.Intent]int)
	var order []pkg.Intent
	for _, topic := range archive.Topics {
		if counts[topic] == 0 {
			order = append(order, topic)
		}
		counts[topic]++
	}

	// Stable selection sort by count, first-seen order breaking ties.
	for len(order) > 0 && len(stats.TopTopics) < 5 {
		bestIdx := 0
		for i, topic := range order {
			if counts[topic] > counts[order[bestIdx]] {
				bestIdx = i
			}
		}
		stats.TopTopics = append(stats.TopTopics, order[bestIdx])
		order = append(order[:bestIdx], order[bestIdx+1:]...)
	}

	return stats
}
