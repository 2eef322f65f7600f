package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/PeimanAtaei/greenbone-project/internal/config"
	"github.com/PeimanAtaei/greenbone-project/internal/gmp"
	"github.com/PeimanAtaei/greenbone-project/internal/helper"
	"github.com/PeimanAtaei/greenbone-project/internal/model"
	"github.com/PeimanAtaei/greenbone-project/internal/namelock"
	"github.com/PeimanAtaei/greenbone-project/internal/orchestrate"
	"github.com/PeimanAtaei/greenbone-project/internal/report"
)

type Server struct {
	orchestrator *orchestrate.Orchestrator
	fetcher      *report.Fetcher
}

func New(orchestrator *orchestrate.Orchestrator, fetcher *report.Fetcher) *Server {
	return &Server{orchestrator: orchestrator, fetcher: fetcher}
}

// Run wires the components from cfg and serves until the listener fails.
func Run(cfg *config.Config) error {
	dial := gmp.NewDialer(gmp.Config{
		Network:  cfg.GVMNetwork,
		Address:  cfg.GVMAddress,
		Username: cfg.GVMUsername,
		Password: cfg.GVMPassword,
	})

	orchestrator := orchestrate.New(dial, namelock.New(), orchestrate.Settings{
		PortListID:  cfg.PortListID,
		ConfigName:  cfg.ConfigName,
		ScannerName: cfg.ScannerName,
	})

	s := New(orchestrator, report.NewFetcher(dial))

	server := &http.Server{
		Addr:           cfg.ListenAddr,
		Handler:        s.Router(),
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   0,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	logrus.Infof("[server] listening on %s", server.Addr)
	return server.ListenAndServe()
}

func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	r.POST("/trigger_scan", s.triggerScanHandler)
	r.GET("/get_results/:scan_id", s.getResultsHandler)
	r.GET("/healthz", healthzHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func (s *Server) triggerScanHandler(ctx *gin.Context) {
	var request model.ScanRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		logrus.Errorf("[triggerScanHandler] invalid request: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "scan_name, targets, are required"})
		return
	}

	hosts, err := helper.ValidateScanRequest(&request)
	if err != nil {
		logrus.Errorf("[triggerScanHandler] invalid request: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logrus.Infof("[triggerScanHandler] starting scan %q for targets: %v", request.ScanName, hosts)

	started, err := s.orchestrator.StartScan(ctx.Request.Context(), request.ScanName, hosts)
	if err != nil {
		logrus.Errorf("[triggerScanHandler] StartScan error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logrus.Infof("[triggerScanHandler] scan started, id=%s", started.ScanID)
	ctx.JSON(http.StatusOK, started)
}

func (s *Server) getResultsHandler(ctx *gin.Context) {
	scanID := ctx.Param("scan_id")
	logrus.Infof("[getResultsHandler] fetching results for scan id=%s", scanID)

	raw, err := s.fetcher.Fetch(ctx.Request.Context(), scanID)
	if err != nil {
		logrus.Errorf("[getResultsHandler] fetch error for id=%s: %v", scanID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	normalized, err := report.Normalize(raw)
	if err != nil {
		logrus.Errorf("[getResultsHandler] normalize error for id=%s: %v", scanID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, normalized)
}

func healthzHandler(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
