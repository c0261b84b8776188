// Package httpserver exposes the local wallet bridge: a wallet relay reports
// connection status here and the running app picks it up.
package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/vahanchain/vahanchain/internal/flow"
	"github.com/vahanchain/vahanchain/internal/wallet"
)

// WalletReporter is the narrow provider contract required by the bridge.
type WalletReporter interface {
	Status() flow.Signals
	Session() string
	LastError() string
	ReportConnecting(session string) error
	ReportConnected(session, address string, chainID int64) error
	ReportDisconnected()
	ReportFailed(reason string)
}

// Server is the HTTP wallet bridge.
type Server struct {
	addr      string
	wallet    WalletReporter
	server    *http.Server
	listener  net.Listener
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time
}

// NewServer creates a bridge bound to addr, localhost only by default.
func NewServer(addr string, w WalletReporter) *Server {
	if addr == "" {
		addr = "127.0.0.1:7420"
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:   addr,
		wallet: w,
		ctx:    ctx,
		cancel: cancel,
	}
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/api/health", s.handleHealth)
	api := r.Group("/api/wallet")
	api.GET("", s.handleStatus)
	api.POST("/connecting", s.handleConnecting)
	api.POST("/connected", s.handleConnected)
	api.POST("/disconnect", s.handleDisconnect)
	api.POST("/failed", s.handleFailed)
	return r
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)

	s.server = &http.Server{
		Handler:           s.routes(),
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.listener = listener
	s.startTime = time.Now()

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("wallet bridge stopped", "err", err)
		}
	}()
	log.Info("wallet bridge listening", "addr", listener.Addr().String())
	return nil
}

// Addr returns the bound address once started.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	s.cancel()
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(s.startTime).String(),
	})
}

func statusBody(sig flow.Signals, session, lastErr string) gin.H {
	return gin.H{
		"connecting":    sig.Connecting,
		"connected":     sig.Connected,
		"address":       sig.Address,
		"short_address": wallet.ShortAddress(sig.Address),
		"chain_id":      sig.ChainID,
		"session":       session,
		"last_error":    lastErr,
	}
}

func (s *Server) handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, statusBody(s.wallet.Status(), s.wallet.Session(), s.wallet.LastError()))
}

type sessionRequest struct {
	Session string `json:"session"`
}

func (s *Server) handleConnecting(c *gin.Context) {
	var req sessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
			return
		}
	}
	if err := s.wallet.ReportConnecting(req.Session); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusAccepted, statusBody(s.wallet.Status(), s.wallet.Session(), ""))
}

func (s *Server) handleConnected(c *gin.Context) {
	var req struct {
		Session string `json:"session"`
		Address string `json:"address" binding:"required"`
		ChainID int64  `json:"chain_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body or missing address/chain_id"})
		return
	}

	err := s.wallet.ReportConnected(req.Session, req.Address, req.ChainID)
	switch {
	case errors.Is(err, wallet.ErrInvalidAddress):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, wallet.ErrUnknownSession):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, statusBody(s.wallet.Status(), s.wallet.Session(), ""))
}

func (s *Server) handleDisconnect(c *gin.Context) {
	s.wallet.ReportDisconnected()
	c.JSON(http.StatusOK, statusBody(s.wallet.Status(), "", ""))
}

func (s *Server) handleFailed(c *gin.Context) {
	var req struct {
		Reason string `json:"reason"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
			return
		}
	}
	if req.Reason == "" {
		req.Reason = "connection failed"
	}
	s.wallet.ReportFailed(req.Reason)
	c.JSON(http.StatusOK, statusBody(s.wallet.Status(), "", s.wallet.LastError()))
}
