package handlers

import (
	"errors"
	"github.com/14kear/movie-voting/internal/services"
	"github.com/gin-gonic/gin"
	"net/http"
	"time"
)

type VotingHandler struct {
	votingService *services.Voting
}

type VoteRequest struct {
	Movie string `json:"movie"`
}

type ResetRequest struct {
	AdminPassword string `json:"adminPassword"`
}

type ResultResponse struct {
	Movie      string  `json:"movie"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

type RecentVoteResponse struct {
	Movie     string    `json:"movie"`
	Timestamp time.Time `json:"timestamp"`
}

func NewVotingHandler(votingService *services.Voting) *VotingHandler {
	return &VotingHandler{votingService: votingService}
}

func (v *VotingHandler) Vote(c *gin.Context) {
	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	_, err := v.votingService.SubmitVote(c.Request.Context(), req.Movie, c.ClientIP())
	if err != nil {
		if errors.Is(err, services.ErrInvalidOption) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register vote"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "vote registered"})
}

func (v *VotingHandler) GetResults(c *gin.Context) {
	results, err := v.votingService.Results(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load results"})
		return
	}

	resp := make([]ResultResponse, 0, len(results.Options))
	for _, r := range results.Options {
		resp = append(resp, ResultResponse{
			Movie:      r.Option,
			Count:      r.Count,
			Percentage: r.Percentage,
		})
	}

	c.JSON(http.StatusOK, gin.H{"results": resp, "total": results.Total})
}

func (v *VotingHandler) GetRecentVotes(c *gin.Context) {
	votes, err := v.votingService.RecentVotes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load recent votes"})
		return
	}

	resp := make([]RecentVoteResponse, 0, len(votes))
	for _, vote := range votes {
		resp = append(resp, RecentVoteResponse{
			Movie:     vote.Option,
			Timestamp: vote.CreatedAt.UTC(),
		})
	}

	c.JSON(http.StatusOK, gin.H{"votes": resp})
}

func (v *VotingHandler) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"options": v.votingService.Options()})
}

func (v *VotingHandler) Reset(c *gin.Context) {
	var req ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	err := v.votingService.ResetVotes(c.Request.Context(), req.AdminPassword)
	if err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			c.JSON(http.StatusForbidden, gin.H{"error": "wrong password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset votes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "votes reset"})
}

func (v *VotingHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC().Format(time.RFC3339)})
}

const landingPage = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
  <meta charset="UTF-8">
  <title>Sistema de Votação</title>
</head>
<body>
  <h1>Sistema de Votação</h1>
  <p><a href="/vote.html">Página de Votação</a></p>
  <p><a href="/admin.html">Painel Admin</a></p>
</body>
</html>
`

func (v *VotingHandler) Home(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(landingPage))
}
