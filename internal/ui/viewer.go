package ui

import "semrun/internal/domain"

// Viewer displays stored failures
type Viewer interface {
	View(results *domain.RunOutput) error
}
