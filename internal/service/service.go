// Package service wires the conversation pipeline: pre-filter, router,
// specialists, judge and composer, threaded through session history.
package service

import (
	"go.uber.org/zap"

	"github.com/intereco/gaia/internal/composer"
	"github.com/intereco/gaia/internal/history"
	"github.com/intereco/gaia/internal/judge"
	"github.com/intereco/gaia/internal/router"
	"github.com/intereco/gaia/internal/specialist"
	"github.com/intereco/gaia/policy"
)

// Service is the conversation orchestrator.
type Service struct {
	store       history.Store
	prefilter   *policy.Engine
	router      *router.Router
	carbono     *specialist.Carbono
	diagnostico *specialist.Diagnostico
	faq         *specialist.FAQ
	judge       *judge.Judge
	composer    *composer.Composer
	logger      *zap.Logger
}

// New assembles the orchestrator from its collaborators.
func New(
	store history.Store,
	prefilter *policy.Engine,
	rt *router.Router,
	carbono *specialist.Carbono,
	diagnostico *specialist.Diagnostico,
	faq *specialist.FAQ,
	j *judge.Judge,
	comp *composer.Composer,
	logger *zap.Logger,
) *Service {
	return &Service{
		store:       store,
		prefilter:   prefilter,
		router:      rt,
		carbono:     carbono,
		diagnostico: diagnostico,
		faq:         faq,
		judge:       j,
		composer:    comp,
		logger:      logger,
	}
}
