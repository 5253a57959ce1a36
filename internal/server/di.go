package server

import (
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"

	"github.com/iWorld-y/venture_radar/internal/biz"
	"github.com/iWorld-y/venture_radar/internal/conf"
	"github.com/iWorld-y/venture_radar/internal/service"
)

// ProviderSet assembles the server's dependency graph.
var ProviderSet = wire.NewSet(
	NewAnalysisUseCase,
	NewAnalysisService,
	NewHTTPServer,
)

// NewAnalysisService binds the export directory from config.
func NewAnalysisService(uc *biz.AnalysisUseCase, c *conf.Radar, logger log.Logger) *service.AnalysisService {
	return service.NewAnalysisService(uc, c.ExportDir, logger)
}
