package maze

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
)

// Options tunes a Controller.
type Options struct {
	LevelCount     int
	StartLevel     int
	Debounce       time.Duration
	HazardCooldown time.Duration
	FallThreshold  float64
	OrbitStep      float64 // radians per tick while awaiting start

	// Difficulty shortens the hazard cooldown on later levels. Optional.
	Difficulty *config.DifficultyManager
}

// DefaultOptions returns the stock four-level rules.
func DefaultOptions() Options {
	return Options{
		LevelCount:     4,
		StartLevel:     1,
		Debounce:       DefaultDebounce,
		HazardCooldown: DefaultHazardCooldown,
		FallThreshold:  -8.0,
		OrbitStep:      0.002,
	}
}

// OptionsFromConfig builds options from the game configuration.
func OptionsFromConfig(cfg config.MazeConfig) Options {
	return Options{
		LevelCount:     cfg.Rules.LevelCount,
		StartLevel:     1,
		Debounce:       cfg.Rules.Debounce,
		HazardCooldown: cfg.Rules.HazardCooldown,
		FallThreshold:  cfg.Rules.FallThreshold,
		OrbitStep:      cfg.Camera.OrbitStep,
		Difficulty:     config.NewDifficultyManager(cfg.Difficulty),
	}
}

// Collaborators are the systems a Controller drives.
// Audio, Haptics, Progress, Runs and Logger may be nil.
type Collaborators struct {
	Scene    Scene
	HUD      HUD
	Audio    Audio
	Haptics  Haptics
	Progress Progress
	Runs     RunRecorder
	Logger   *log.Logger
}

// run tracks the current play phase for the run history.
type run struct {
	level   int
	started time.Duration
	pickups int
	hazards int
}

// Controller is the phase state machine of a play session. It owns the
// level, the health tracker, the tutorial and the contact resolver, and
// must only be used from one goroutine.
type Controller struct {
	opts  Options
	phase Phase
	level int
	refs  LevelRefs

	clock    *SimClock
	sched    *Scheduler
	health   *HealthTracker
	tutorial *TutorialSequencer
	resolver *Resolver
	cur      run

	scene    Scene
	hud      HUD
	progress Progress
	runs     RunRecorder
	fx       *effects
	logger   *log.Logger
}

// NewController creates a controller in the Loading phase.
func NewController(c Collaborators, opts Options) *Controller {
	if opts.LevelCount < 1 {
		opts.LevelCount = 1
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.HazardCooldown <= 0 {
		opts.HazardCooldown = DefaultHazardCooldown
	}
	logger := c.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if c.Audio == nil {
		c.Audio = silent{}
	}
	if c.Haptics == nil {
		c.Haptics = silent{}
	}

	clock := &SimClock{}
	ctrl := &Controller{
		opts:     opts,
		phase:    PhaseLoading,
		level:    core.Clamp(opts.StartLevel, 1, opts.LevelCount),
		clock:    clock,
		sched:    NewScheduler(clock),
		health:   NewHealthTracker(c.HUD),
		tutorial: NewTutorialSequencer(c.HUD),
		scene:    c.Scene,
		hud:      c.HUD,
		progress: c.Progress,
		runs:     c.Runs,
		logger:   logger,
	}
	ctrl.fx = &effects{audio: c.Audio, scene: c.Scene, logger: logger, failed: make(map[string]bool)}
	ctrl.resolver = &Resolver{
		flow:     ctrl,
		scene:    c.Scene,
		haptics:  c.Haptics,
		fx:       ctrl.fx,
		health:   ctrl.health,
		tutorial: ctrl.tutorial,
		sched:    ctrl.sched,
		debounce: NewDebouncer(clock, opts.Debounce),
		gates:    make(map[string]bool),
		logger:   logger,
	}
	// A session that starts past level 1 has already been through the tutorial.
	if ctrl.level > 1 {
		ctrl.tutorial.Restore(TutorialDone)
	}
	return ctrl
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase { return c.phase }

// Level returns the current level, starting at 1.
func (c *Controller) Level() int { return c.level }

// LevelCount returns the number of levels.
func (c *Controller) LevelCount() int { return c.opts.LevelCount }

// Life returns the current life total.
func (c *Controller) Life() int { return c.health.Life() }

// Tutorial returns the tutorial step.
func (c *Controller) Tutorial() TutorialStep { return c.tutorial.Step() }

// Refs returns the named nodes of the loaded level.
func (c *Controller) Refs() LevelRefs { return c.refs }

// Begin loads the starting level and waits for the first tap.
func (c *Controller) Begin() error {
	if c.phase != PhaseLoading {
		return ErrNotLoading
	}
	if err := c.setupLevel(c.level); err != nil {
		return err
	}
	c.health.Reset()
	c.awaitStart(PromptTapToPlay)
	return nil
}

// Tick advances time by dt and runs the per-tick bookkeeping.
func (c *Controller) Tick(dt time.Duration) {
	c.clock.Advance(dt)
	c.sched.Run()

	switch c.phase {
	case PhaseAwaitingStart:
		c.scene.RotateOrbit(c.opts.OrbitStep)
	case PhasePlaying:
		if c.level == 1 && c.tutorial.Step() == TutorialGoalReached {
			c.tutorial.Advance()
			c.endRun(OutcomeTutorial)
			c.idle()
			return
		}
		pos := c.scene.PlayerPosition()
		c.scene.FollowPlayer(pos)
		if pos.Y < c.opts.FallThreshold {
			c.gameOver(OutcomeFell)
		}
	}
}

// HandleContact resolves one contact-begin event.
func (c *Controller) HandleContact(ct Contact) EncounterKind {
	return c.resolver.Resolve(ct)
}

// HandleInput applies one input event. It returns an error only when a
// level load fails, in which case the controller is back in Loading.
func (c *Controller) HandleInput(ev core.InputEvent) error {
	if c.phase == PhasePlaying {
		c.handlePlayInput(ev)
		return nil
	}
	if ev.Kind == core.InputRelease {
		return nil
	}

	switch c.phase {
	case PhaseAwaitingStart:
		if c.level == 1 && c.tutorial.Done() && c.opts.LevelCount > 1 {
			if err := c.enterLevel(2); err != nil {
				return err
			}
		}
		c.startPlay()
	case PhaseLevelCleared:
		c.hud.HideLabel()
		next := core.Clamp(c.level+1, 1, c.opts.LevelCount)
		if err := c.enterLevel(next); err != nil {
			return err
		}
		c.awaitStart(PromptTapToPlay)
	case PhaseAllLevelsCleared:
		c.hud.HideLabel()
		if err := c.enterLevel(1); err != nil {
			return err
		}
		c.awaitStart(PromptTapToPlay)
	default:
		c.logger.Debug("input ignored", "phase", c.phase, "kind", ev.Kind)
	}
	return nil
}

func (c *Controller) handlePlayInput(ev core.InputEvent) {
	switch {
	case ev.Control.IsDirection() && ev.Kind == core.InputPress:
		c.scene.Roll(ev.Control)
	case ev.Control.IsDirection() && ev.Kind == core.InputRelease:
		c.scene.StopPlayer()
	case ev.Control == core.ControlReplay && ev.Kind == core.InputPress && c.level > 1:
		c.endRun(OutcomeReplay)
		c.startPlay()
	}
}

// setupLevel loads a level and rebuilds the per-level references.
func (c *Controller) setupLevel(level int) error {
	refs, err := c.scene.LoadLevel(level)
	if err == nil {
		err = refs.Validate()
	}
	if err != nil {
		c.phase = PhaseLoading
		return fmt.Errorf("maze: load level %d: %w", level, err)
	}
	c.level = level
	c.refs = refs
	c.resolver.resetLevel()
	c.logger.Debug("level loaded", "level", level)
	return nil
}

// enterLevel is a new-level entry: load, record progress, full health.
func (c *Controller) enterLevel(level int) error {
	if err := c.setupLevel(level); err != nil {
		return err
	}
	if err := c.recordProgress(level); err != nil {
		c.logger.Warn("record progress", "level", level, "err", err)
	}
	c.health.Reset()
	return nil
}

func (c *Controller) recordProgress(level int) error {
	if c.progress == nil {
		return nil
	}
	best, err := c.progress.HighestLevelReached()
	if err != nil {
		return err
	}
	if level <= best {
		return nil
	}
	return c.progress.RecordHighestLevelReached(level)
}

func (c *Controller) startPlay() {
	c.setPhase(PhasePlaying)
	c.scene.UseCamera(CameraFollow)
	c.hud.HideLabel()
	c.hud.ShowController()
	if c.level > 1 {
		c.hud.ShowReplayButton()
	} else {
		c.hud.HideReplayButton()
	}
	c.scene.StopPlayer()
	c.scene.ResetPlayer()
	c.health.Reset()
	c.health.SetVisible(true)
	c.resolver.debounce.Reset()
	if c.level == 1 && !c.tutorial.Done() {
		c.hud.SetLabel(PromptTutorial)
		c.hud.ShowLabel()
	}
	c.cur = run{level: c.level, started: c.clock.Now()}
}

// awaitStart shows a prompt and idles until the next tap.
func (c *Controller) awaitStart(prompt string) {
	c.hud.SetLabel(prompt)
	c.hud.ShowLabel()
	c.idle()
}

// idle enters AwaitingStart without touching the label.
func (c *Controller) idle() {
	c.setPhase(PhaseAwaitingStart)
	c.scene.UseCamera(CameraOrbit)
	c.hud.HideController()
	c.hud.HideReplayButton()
	c.health.SetVisible(false)
}

func (c *Controller) gameOver(outcome Outcome) {
	c.setPhase(PhaseGameOver)
	c.fx.play(config.CueGameOver)
	c.endRun(outcome)
	c.scene.StopPlayer()
	c.scene.ResetPlayer()
	c.awaitStart(PromptGameOver)
}

func (c *Controller) finishLevel(phase Phase, prompt string, outcome Outcome) {
	c.setPhase(phase)
	c.endRun(outcome)
	c.scene.StopPlayer()
	c.hud.HideController()
	c.hud.HideReplayButton()
	c.hud.SetLabel(prompt)
	c.hud.ShowLabel()
}

func (c *Controller) levelCleared() {
	c.finishLevel(PhaseLevelCleared, ClearedPrompt(c.level), OutcomeCleared)
}

func (c *Controller) allLevelsCleared() {
	c.finishLevel(PhaseAllLevelsCleared, PromptAllCleared, OutcomeCompleted)
}

func (c *Controller) lifeExhausted() {
	if c.phase == PhasePlaying {
		c.gameOver(OutcomeGameOver)
	}
}

func (c *Controller) countPickup() { c.cur.pickups++ }
func (c *Controller) countHazard() { c.cur.hazards++ }

func (c *Controller) hazardCooldown() time.Duration {
	if c.opts.Difficulty == nil {
		return c.opts.HazardCooldown
	}
	return c.opts.Difficulty.Cooldown(c.opts.HazardCooldown, c.level)
}

func (c *Controller) endRun(outcome Outcome) {
	if c.runs == nil {
		return
	}
	res := RunResult{
		Level:    c.cur.level,
		Outcome:  outcome,
		Pickups:  c.cur.pickups,
		Hazards:  c.cur.hazards,
		Duration: c.clock.Now() - c.cur.started,
	}
	if err := c.runs.RecordRun(res); err != nil {
		c.logger.Warn("record run", "err", err)
	}
}

func (c *Controller) setPhase(p Phase) {
	if c.phase == p {
		return
	}
	c.logger.Debug("phase", "from", c.phase, "to", p, "level", c.level, "life", c.health.Life())
	c.phase = p
}

// silent stands in for missing audio and haptics.
type silent struct{}

func (silent) Play(string) error { return nil }
func (silent) Vibrate()          {}
