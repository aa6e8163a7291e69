package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// normalizeLogLevel accepts either a logrus level name ("debug") or its numeric value ("5").
// An empty value means the default level. Unknown values return the default level together with an error.
func normalizeLogLevel(value string) (logrus.Level, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return logrus.InfoLevel, nil
	}

	if n, err := strconv.Atoi(value); err == nil {
		lvl := logrus.Level(n)
		if n < 0 || !lo.Contains(logrus.AllLevels, lvl) {
			return logrus.InfoLevel, fmt.Errorf("level %d is out of range", n)
		}
		return lvl, nil
	}

	lvl, err := logrus.ParseLevel(value)
	if err != nil {
		return logrus.InfoLevel, err
	}
	return lvl, nil
}
