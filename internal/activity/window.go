package activity

const daySeconds = 86400

// Window trims the snapshot to the requested history and forecast spans.
// A nil limit falls back to the given default, zero means unlimited, and
// a positive limit keeps only days within that many days of Today,
// tightening Start and Stop to match so the rendered range agrees with
// the remaining data.
func (s *Snapshot) Window(limhist, limfcst *int, defaultHist, defaultFcst int) {
	hist := resolveLimit(limhist, defaultHist)
	fcst := resolveLimit(limfcst, defaultFcst)

	if hist > 0 {
		cutoff := s.Today - int64(hist)*daySeconds
		for day := range s.Activity {
			if day < cutoff {
				delete(s.Activity, day)
			}
		}
		if s.Start < cutoff {
			s.Start = cutoff
		}
	}

	if fcst > 0 {
		cutoff := s.Today + int64(fcst)*daySeconds
		for day := range s.Activity {
			if day > cutoff {
				delete(s.Activity, day)
			}
		}
		if s.Stop > cutoff {
			s.Stop = cutoff
		}
	}
}

func resolveLimit(requested *int, fallback int) int {
	if requested != nil {
		return *requested
	}
	return fallback
}
