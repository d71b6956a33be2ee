package dllist

import "github.com/sirkon/seqlist/logging"

// Opt определение опции списка.
type Opt func(s *settings, _ optRestriction)

type optRestriction struct{}

type settings struct {
	log logging.Logger
}

// WithLogger задание логгера отвергнутых операций. По умолчанию
// ничего не логируется. Копии списка наследуют его логгер.
func WithLogger(logger logging.Logger) Opt {
	return func(s *settings, _ optRestriction) {
		if logger == nil {
			logger = logging.Nop()
		}
		s.log = logger
	}
}
