package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HintsSent counts hint emails by final status ("sent" / "failed").
	HintsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wyshdrop_hints_sent_total",
		Help: "Hint emails dispatched, by delivery status.",
	}, []string{"status"})

	// QuizSubmissions counts quiz submissions by outcome ("ok" / "error").
	QuizSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wyshdrop_quiz_submissions_total",
		Help: "Quiz submissions, by outcome.",
	}, []string{"outcome"})

	// PageTransitions counts committed page changes across all sessions.
	PageTransitions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wyshdrop_page_transitions_total",
		Help: "Committed page transitions across all sessions.",
	})
)

// Handler exposes the Prometheus scrape endpoint as a gin handler.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
