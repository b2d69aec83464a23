package sim

import "github.com/vovakirdan/rhythm-dodger/internal/config"

// ScheduleRow is a snapshot of the spawn cadence at one point of a session.
// An interval of zero means the family is silent at that time.
type ScheduleRow struct {
	GameTimeMs float64
	Stage      int
	Multiplier float64
	Intervals  [familyCount]float64
}

// FamilyNames lists the families in ScheduleRow.Intervals order.
func FamilyNames() []string {
	names := make([]string, familyCount)
	for f := range familyCount {
		names[f] = f.String()
	}
	return names
}

// Schedule samples the spawn cadence every stepMs of game time for a whole
// session. It follows the same stage and gating rules as the spawner.
func Schedule(cfg config.DodgerConfig, stepMs float64) []ScheduleRow {
	if stepMs <= 0 {
		stepMs = 10000
	}
	dm := config.NewDifficultyManager(cfg.Difficulty, cfg.Stages)
	s := &State{cfg: cfg}

	var rows []ScheduleRow
	for t := 0.0; t <= cfg.Session.DurationMs; t += stepMs {
		stage, stageStart := 1, 0.0
		if t >= cfg.Stages.Stage2AtMs {
			stage, stageStart = 2, cfg.Stages.Stage2AtMs
		}
		row := ScheduleRow{
			GameTimeMs: t,
			Stage:      stage,
			Multiplier: dm.Multiplier(stage, t-stageStart),
		}
		for f := range familyCount {
			fc := s.familyConfig(f)
			if t < fc.StartMs || (fc.Stage2Only && stage < 2) {
				continue
			}
			row.Intervals[f] = dm.Interval(fc, t)
		}
		rows = append(rows, row)
	}
	return rows
}
