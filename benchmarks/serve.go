package benchmarks

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/zeu5/pagefault-sweep/paging"
	"github.com/zeu5/pagefault-sweep/types"
)

// bounds on requests so a single query cannot exhaust the server
const (
	maxServeTraceLength = 1 << 20
	maxServePages       = 4096
)

type sweepResponse struct {
	Seed        uint64        `json:"seed"`
	TraceLength int           `json:"trace_length"`
	Pages       int           `json:"pages"`
	LegacyHand  bool          `json:"legacy_hand"`
	Results     types.DataSet `json:"results"`
}

type traceResponse struct {
	Seed  uint64       `json:"seed"`
	Trace paging.Trace `json:"trace"`
}

// NewExplorerRouter returns the http handler that runs sweeps on request
func NewExplorerRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())
	r.GET("/trace", handleTrace)
	r.GET("/sweep", handleSweep)
	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(log.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}).Debug("request")
	}
}

// sweepParams reads n, p and seed from the query
func sweepParams(c *gin.Context) (int, int, uint64, error) {
	n, err := strconv.Atoi(c.Query("n"))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("n must be an integer, got %q", c.Query("n"))
	}
	p, err := strconv.Atoi(c.Query("p"))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("p must be an integer, got %q", c.Query("p"))
	}
	if err := types.ValidateSweep(n, p); err != nil {
		return 0, 0, 0, err
	}
	if n > maxServeTraceLength || p > maxServePages {
		return 0, 0, 0, fmt.Errorf("n must be <= %d and p must be <= %d", maxServeTraceLength, maxServePages)
	}
	var s uint64
	if q := c.Query("seed"); q != "" {
		s, err = strconv.ParseUint(q, 10, 64)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("seed must be an unsigned integer, got %q", q)
		}
	}
	return n, p, paging.ClockSeed(s), nil
}

func handleTrace(c *gin.Context) {
	n, p, s, err := sweepParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, traceResponse{
		Seed:  s,
		Trace: paging.NewSeededTraceGenerator(s).Generate(n, p),
	})
}

func handleSweep(c *gin.Context) {
	n, p, s, err := sweepParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	legacy := c.Query("legacy") == "true"

	trace := paging.NewSeededTraceGenerator(s).Generate(n, p)
	ds, err := types.NewSweep(&types.ComparisonConfig{
		Trace:      trace,
		Pages:      p,
		LegacyHand: legacy,
	}).Run(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sweepResponse{
		Seed:        s,
		TraceLength: n,
		Pages:       p,
		LegacyHand:  legacy,
		Results:     ds,
	})
}

func ServeCommand() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve sweeps over http",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			server := &http.Server{
				Addr:    fmt.Sprintf("localhost:%d", port),
				Handler: NewExplorerRouter(),
			}
			errCh := make(chan error, 1)
			go func() {
				log.WithField("addr", server.Addr).Info("serving sweeps")
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().IntVar(&port, "port", 8080, "Port to listen on")
	return cmd
}
