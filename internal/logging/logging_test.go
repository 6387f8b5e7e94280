package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, New("debug", "text").GetLevel())
	assert.Equal(t, logrus.WarnLevel, New("WARN", "text").GetLevel())
	assert.Equal(t, logrus.InfoLevel, New("loud", "text").GetLevel())
}

func TestNewFormat(t *testing.T) {
	assert.IsType(t, &logrus.JSONFormatter{}, New("info", "json").Formatter)
	assert.IsType(t, &logrus.TextFormatter{}, New("info", "text").Formatter)
}
