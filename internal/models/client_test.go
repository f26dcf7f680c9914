package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkrasnov/shrtnr/internal/models"
)

func TestDetectClient(t *testing.T) {
	tests := []struct {
		userAgent string
		want      models.ClientKind
	}{
		{"curl/8.4.0", models.ClientConsole},
		{"Wget/1.21.3 (linux-gnu)", models.ClientConsole},
		{"HTTPie/3.2.2", models.ClientConsole},
		{"Mozilla/5.0 (X11; Linux x86_64)", models.ClientBrowser},
		{"", models.ClientBrowser},
	}

	for _, tt := range tests {
		t.Run(tt.userAgent, func(t *testing.T) {
			assert.Equal(t, tt.want, models.DetectClient(tt.userAgent))
		})
	}
}
