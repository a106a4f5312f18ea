package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/culiacan/internal/contract"
	"github.com/alexanderramin/culiacan/internal/domain"
	"github.com/alexanderramin/culiacan/internal/game"
	"gopkg.in/yaml.v3"
)

// script is a scripted play-through fed to a session by `simulate`.
// JSON documents are accepted as well, being valid YAML.
type script struct {
	Steps []scriptStep `yaml:"steps"`
}

// scriptStep holds exactly one action.
type scriptStep struct {
	// Event is a pressure event kind; Count or Delta carries its size.
	Event string  `yaml:"event"`
	Count int     `yaml:"count"`
	Delta float64 `yaml:"delta"`

	// Objective completes the named objective, or the next pending one
	// when set to "next".
	Objective string `yaml:"objective"`

	// Tick advances the clock by a Go duration ("1.5s", "2m").
	Tick string `yaml:"tick"`
	// Repeat splits Tick into that many frames.
	Repeat int `yaml:"repeat"`

	Abandon bool `yaml:"abandon"`
}

func parseScript(r io.Reader) (*script, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("script is empty")
		}
		return nil, fmt.Errorf("parsing script: %w", err)
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &s, nil
}

func (st scriptStep) validate() error {
	actions := 0
	for _, set := range []bool{st.Event != "", st.Objective != "", st.Tick != "", st.Abandon} {
		if set {
			actions++
		}
	}
	if actions != 1 {
		return errors.New("exactly one of event, objective, tick or abandon is required")
	}
	if st.Tick != "" {
		if _, err := time.ParseDuration(st.Tick); err != nil {
			return fmt.Errorf("tick: %w", err)
		}
		if st.Repeat < 0 {
			return errors.New("repeat must not be negative")
		}
	}
	return nil
}

// stepResult is what one step emitted.
type stepResult struct {
	Step    int
	Note    string
	Signals []contract.Signal
}

// run feeds every step into sess and reports per-step output. Unknown event
// kinds and malformed sizes reach the session as-is; it reports them as
// clamped inputs.
func (s *script) run(sess *game.Session) []stepResult {
	var results []stepResult
	for i, st := range s.Steps {
		r := stepResult{Step: i + 1}
		switch {
		case st.Event != "":
			r.Signals = sess.ApplyEvent(domain.PressureEvent{
				Kind: domain.EventKind(st.Event), Count: st.Count, Delta: st.Delta,
			})
			r.Note = fmt.Sprintf("%s count=%d delta=%+.3f", st.Event, st.Count, st.Delta)
		case st.Objective == "next":
			if id, ok := sess.CompleteNextObjective(); ok {
				r.Note = "objective " + id + " complete"
			} else {
				r.Note = "no pending objective"
			}
		case st.Objective != "":
			if sess.CompleteObjective(st.Objective) {
				r.Note = "objective " + st.Objective + " complete"
			} else {
				r.Note = "objective " + st.Objective + " not available"
			}
		case st.Tick != "":
			total, _ := time.ParseDuration(st.Tick)
			frames := max(st.Repeat, 1)
			frame := total / time.Duration(frames)
			for f := 0; f < frames; f++ {
				r.Signals = append(r.Signals, sess.Tick(frame)...)
			}
			r.Note = fmt.Sprintf("tick %s", total)
			if frames > 1 {
				r.Note += fmt.Sprintf(" in %d frames", frames)
			}
		case st.Abandon:
			r.Signals = sess.AbandonMission()
			r.Note = "mission abandoned"
		}
		results = append(results, r)
	}
	return results
}
