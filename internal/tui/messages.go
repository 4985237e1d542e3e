package tui

import (
	"github.com/MKhiriev/go-geo-toolkit/models"
)

type stateTickMsg struct{}

type submitDoneMsg struct {
	err error
}

type formOpenedMsg struct {
	form *models.FeatureForm
	err  error
}

type formSavedMsg struct {
	err error
}

type featureDeletedMsg struct {
	err error
}
