// Command mockapi is a development stand-in for the remote financing API.
// It speaks the same /api surface the console consumes, backed by seeded
// in-memory data. Not for production use: no auth checks beyond shape, no
// persistence.
package main

import (
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"dealerdesk/internal/model"
)

type store struct {
	mu      sync.Mutex
	dealers map[int64]*model.Dealer
	loans   map[int64]*model.Loan
	reps    map[int64]*model.Representative
	nextID  int64
}

func (s *store) id() int64 {
	s.nextID++
	return s.nextID
}

func seed() *store {
	s := &store{
		dealers: map[int64]*model.Dealer{},
		loans:   map[int64]*model.Loan{},
		reps:    map[int64]*model.Representative{},
		nextID:  100,
	}
	d := &model.Dealer{
		ID: 1, DealerCode: "DLR000001", LoanProposalNo: "LPN202601010001",
		Name: "Sunrise Motors", PAN: "ABCDE1234F", EntityType: "proprietorship",
		Location: "Pune", RelationshipManager: "R. Iyer", Status: "active",
		SanctionAmount: decimal.NewFromInt(5000000), AvailableLimit: decimal.NewFromInt(3500000),
		OutstandingAmount: decimal.NewFromInt(1500000), IsActive: true,
		DateOfOnboarding: "2026-01-01", UserID: 42,
		UtilizationPercentage: decimal.NewFromInt(30),
	}
	s.dealers[d.ID] = d
	s.loans[10] = &model.Loan{
		ID: 10, LoanNumber: "LN-0010", DateOfWithdraw: "2026-02-10",
		Amount: decimal.NewFromInt(750000), DealerID: 1, DealerName: d.Name,
		IsActive: true, UTRNumber: "UTR994410",
	}
	s.loans[11] = &model.Loan{
		ID: 11, LoanNumber: "LN-0011", DateOfWithdraw: "2026-03-02",
		Amount: decimal.NewFromInt(750000), DealerID: 1, DealerName: d.Name,
		IsActive: false, UTRNumber: "UTR994411",
	}
	s.reps[5] = &model.Representative{
		ID: 5, Username: "jlopez", Email: "jlopez@example.com",
		PhoneNumber: "+91-9000000001", UserType: "admin", IsActive: true,
	}
	return s
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	gin.SetMode(gin.ReleaseMode)

	s := seed()
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	{
		api.POST("/Auth/login", func(c *gin.Context) {
			var req struct {
				Username string `json:"username"`
				Password string `json:"password"`
				UserType string `json:"userType"`
			}
			if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
				c.String(http.StatusOK, "false")
				return
			}
			token := "mock-token-" + req.Username
			c.JSON(http.StatusOK, gin.H{
				"id": 42, "username": req.Username, "email": req.Username + "@example.com",
				"userType": req.UserType, "isActive": true, "token": token,
			})
		})
		api.POST("/Auth/register", func(c *gin.Context) {
			body := map[string]any{}
			_ = c.ShouldBindJSON(&body)
			s.mu.Lock()
			body["id"] = s.id()
			s.mu.Unlock()
			body["isActive"] = true
			c.JSON(http.StatusOK, body)
		})
		api.POST("/Auth/add-representative", func(c *gin.Context) {
			var rep model.Representative
			if err := c.ShouldBindJSON(&rep); err != nil {
				c.Status(http.StatusBadRequest)
				return
			}
			s.mu.Lock()
			rep.ID = s.id()
			rep.IsActive = true
			s.reps[rep.ID] = &rep
			s.mu.Unlock()
			c.JSON(http.StatusOK, rep)
		})
		api.GET("/Auth/representatives", func(c *gin.Context) {
			s.mu.Lock()
			out := make([]*model.Representative, 0, len(s.reps))
			for _, rep := range s.reps {
				out = append(out, rep)
			}
			s.mu.Unlock()
			c.JSON(http.StatusOK, out)
		})
		api.GET("/Auth/representatives/:id", func(c *gin.Context) {
			rep, ok := s.reps[param(c)]
			if !ok {
				c.Status(http.StatusNotFound)
				return
			}
			c.JSON(http.StatusOK, rep)
		})
		api.PUT("/Auth/representatives/:id", func(c *gin.Context) {
			s.mu.Lock()
			defer s.mu.Unlock()
			rep, ok := s.reps[param(c)]
			if !ok {
				c.Status(http.StatusNotFound)
				return
			}
			var req struct {
				Email       string `json:"email"`
				PhoneNumber string `json:"phoneNumber"`
				IsActive    bool   `json:"isActive"`
			}
			_ = c.ShouldBindJSON(&req)
			rep.Email, rep.PhoneNumber, rep.IsActive = req.Email, req.PhoneNumber, req.IsActive
			c.JSON(http.StatusOK, rep)
		})
		api.DELETE("/Auth/representatives/:id", func(c *gin.Context) {
			s.mu.Lock()
			delete(s.reps, param(c))
			s.mu.Unlock()
			c.Status(http.StatusOK)
		})

		api.POST("/Dealers/register", func(c *gin.Context) {
			var d model.Dealer
			if err := c.ShouldBindJSON(&d); err != nil {
				c.Status(http.StatusBadRequest)
				return
			}
			s.mu.Lock()
			d.ID = s.id()
			s.dealers[d.ID] = &d
			s.mu.Unlock()
			c.JSON(http.StatusOK, d)
		})
		api.GET("/Dealers", func(c *gin.Context) {
			s.mu.Lock()
			out := make([]*model.Dealer, 0, len(s.dealers))
			for _, d := range s.dealers {
				out = append(out, d)
			}
			s.mu.Unlock()
			c.JSON(http.StatusOK, out)
		})
		api.GET("/Dealers/:id", func(c *gin.Context) {
			d, ok := s.dealers[param(c)]
			if !ok {
				c.Status(http.StatusNotFound)
				return
			}
			c.JSON(http.StatusOK, d)
		})
		api.PUT("/Dealers/:id", func(c *gin.Context) {
			s.mu.Lock()
			defer s.mu.Unlock()
			d, ok := s.dealers[param(c)]
			if !ok {
				c.Status(http.StatusNotFound)
				return
			}
			var fields map[string]any
			_ = c.ShouldBindJSON(&fields)
			if v, ok := fields["name"].(string); ok {
				d.Name = v
			}
			if v, ok := fields["status"].(string); ok {
				d.Status = v
			}
			if v, ok := fields["isActive"].(bool); ok {
				d.IsActive = v
			}
			if v, ok := fields["sanctionAmount"].(float64); ok {
				d.SanctionAmount = decimal.NewFromFloat(v)
			}
			c.JSON(http.StatusOK, d)
		})

		api.GET("/Loans", func(c *gin.Context) {
			s.mu.Lock()
			out := make([]*model.Loan, 0, len(s.loans))
			for _, l := range s.loans {
				out = append(out, l)
			}
			s.mu.Unlock()
			c.JSON(http.StatusOK, out)
		})
		api.GET("/Loans/dealer/:id", func(c *gin.Context) {
			dealerID := param(c)
			s.mu.Lock()
			out := make([]*model.Loan, 0)
			for _, l := range s.loans {
				if l.DealerID == dealerID {
					out = append(out, l)
				}
			}
			s.mu.Unlock()
			c.JSON(http.StatusOK, out)
		})
		api.GET("/Loans/:id", func(c *gin.Context) {
			l, ok := s.loans[param(c)]
			if !ok {
				c.Status(http.StatusNotFound)
				return
			}
			c.JSON(http.StatusOK, l)
		})
		api.DELETE("/Loans/:id", func(c *gin.Context) {
			s.mu.Lock()
			delete(s.loans, param(c))
			s.mu.Unlock()
			c.Status(http.StatusOK)
		})
	}

	addr := ":7120"
	if v := os.Getenv("MOCKAPI_ADDR"); v != "" {
		addr = v
	}
	log.Info().Msgf("mock financing API listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("mockapi server error")
	}
}

func param(c *gin.Context) int64 {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	return id
}
