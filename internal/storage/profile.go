package storage

import "github.com/vovakirdan/tui-maze/internal/maze"

// Profile binds the store to one player. It satisfies maze.Progress and
// maze.RunRecorder.
type Profile struct {
	store *Store
	name  string
}

// Progress returns the persistence view for a profile.
func (s *Store) Progress(profile string) *Profile {
	if profile == "" {
		profile = DefaultProfile
	}
	return &Profile{store: s, name: profile}
}

// Name returns the profile name.
func (p *Profile) Name() string {
	return p.name
}

// HighestLevelReached reports at least level 1, even for a new profile.
func (p *Profile) HighestLevelReached() (int, error) {
	level, err := p.store.HighestLevel(p.name)
	if err != nil {
		return 0, err
	}
	return max(level, 1), nil
}

func (p *Profile) RecordHighestLevelReached(level int) error {
	return p.store.RecordHighestLevel(p.name, level)
}

func (p *Profile) RecordRun(r maze.RunResult) error {
	_, err := p.store.SaveRun(p.name, r)
	return err
}

var (
	_ maze.Progress    = (*Profile)(nil)
	_ maze.RunRecorder = (*Profile)(nil)
)
