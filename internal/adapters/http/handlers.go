package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"svw.info/twentyfour/internal/domain"
	"svw.info/twentyfour/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/new", h.handleNew)
	mux.HandleFunc("/api/solutions", h.handleSolutions)
	mux.HandleFunc("/api/check", h.handleCheck)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/stats", h.handleStats)
	mux.HandleFunc("/api/save", h.handleSave)
	mux.HandleFunc("/api/load", h.handleLoad)
	mux.HandleFunc("/api/list", h.handleList)
}

func parseDifficulty(s string) domain.Difficulty {
	return domain.ParseDifficulty(strings.ToLower(strings.TrimSpace(s)))
}

// specFrom rebuilds the engine view from a request's numbers+difficulty.
func specFrom(numbers []int, difficulty string) domain.PuzzleSpec {
	d := parseDifficulty(difficulty)
	return domain.NewSpec(numbers, domain.Target, d.Operators())
}

// ---- New ----

type newReq struct {
	Difficulty string `json:"difficulty,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

type newResp struct {
	Puzzle     *domain.Puzzle `json:"puzzle,omitempty"`
	DurationMs int64          `json:"durationMs,omitempty"`
	Candidates int            `json:"candidates,omitempty"`
	Error      string         `json:"error,omitempty"`
}

func (h *Handler) handleNew(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req newReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(newResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p, st, err := h.UC.NewPuzzle(r.Context(), seed, parseDifficulty(req.Difficulty))
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(newResp{Error: err.Error()})
		return
	}
	_, _ = h.UC.RecordPlayed(r.Context())
	_ = json.NewEncoder(w).Encode(newResp{
		Puzzle:     p,
		DurationMs: st.Duration.Milliseconds(),
		Candidates: st.Candidates,
	})
}

// ---- Solutions ----

type solutionsReq struct {
	Numbers    []int  `json:"numbers"`
	Difficulty string `json:"difficulty,omitempty"`
}

type solutionsResp struct {
	Solutions  []string `json:"solutions"`
	Count      int      `json:"count"`
	DurationMs int64    `json:"durationMs,omitempty"`
	Candidates int      `json:"candidates,omitempty"`
	Error      string   `json:"error,omitempty"`
}

func (h *Handler) handleSolutions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req solutionsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solutionsResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if len(req.Numbers) != domain.OperandCount {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solutionsResp{Error: "expected exactly 4 numbers"})
		return
	}
	sols, st, err := h.UC.Solutions(r.Context(), specFrom(req.Numbers, req.Difficulty))
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(solutionsResp{Error: err.Error()})
		return
	}
	if sols == nil {
		sols = []string{}
	}
	_ = json.NewEncoder(w).Encode(solutionsResp{
		Solutions:  sols,
		Count:      len(sols),
		DurationMs: st.Duration.Milliseconds(),
		Candidates: st.Candidates,
	})
}

// ---- Check ----

type checkReq struct {
	Numbers    []int  `json:"numbers"`
	Difficulty string `json:"difficulty,omitempty"`
	Expression string `json:"expression"`
	// Milliseconds the player took; recorded on success when > 0.
	ElapsedMs int64 `json:"elapsedMs,omitempty"`
}

type checkResp struct {
	OK      bool   `json:"ok"`
	Value   int64  `json:"value,omitempty"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (h *Handler) handleCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req checkReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(checkResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if len(req.Numbers) != domain.OperandCount {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(checkResp{Error: "expected exactly 4 numbers"})
		return
	}
	val, err := h.UC.Check(r.Context(), req.Expression, specFrom(req.Numbers, req.Difficulty))
	if err != nil {
		var perr *domain.ParseError
		if errors.As(err, &perr) {
			_ = json.NewEncoder(w).Encode(checkResp{
				OK:      false,
				Kind:    perr.Kind.String(),
				Message: perr.Msg,
			})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(checkResp{Error: err.Error()})
		return
	}
	if req.ElapsedMs > 0 {
		_, _ = h.UC.RecordSolve(r.Context(), req.ElapsedMs)
	}
	_ = json.NewEncoder(w).Encode(checkResp{OK: true, Value: val})
}

// ---- Hint ----

type hintReq struct {
	Numbers    []int  `json:"numbers"`
	Difficulty string `json:"difficulty,omitempty"`
}

type hintResp struct {
	Found   bool   `json:"found"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req hintReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if len(req.Numbers) != domain.OperandCount {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintResp{Error: "expected exactly 4 numbers"})
		return
	}
	d := parseDifficulty(req.Difficulty)
	hint, found, err := h.UC.Hint(r.Context(), specFrom(req.Numbers, req.Difficulty), d)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(hintResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(hintResp{Found: found, Message: hint.Message})
}

// ---- Stats ----

type statsResp struct {
	Stats       *domain.SessionStats `json:"stats,omitempty"`
	SuccessRate float64              `json:"successRate"`
	AverageMs   int64                `json:"averageMs"`
	Error       string               `json:"error,omitempty"`
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	s, err := h.UC.Stats(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(statsResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(statsResp{
		Stats:       s,
		SuccessRate: s.SuccessRate(),
		AverageMs:   s.AverageMillis(),
	})
}

// ---- Save / Load / List ----

type saveReq struct {
	Puzzle domain.Puzzle `json:"puzzle"`
}

type saveResp struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req saveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(saveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if err := h.UC.Save(r.Context(), &req.Puzzle); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(saveResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(saveResp{OK: true})
}

type loadResp struct {
	Puzzle *domain.Puzzle `json:"puzzle,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(loadResp{Error: "missing id"})
		return
	}
	p, err := h.UC.Load(r.Context(), id)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(loadResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(loadResp{Puzzle: p})
}

type listResp struct {
	Puzzles []domain.PuzzleMeta `json:"puzzles"`
	Error   string              `json:"error,omitempty"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	metas, err := h.UC.List(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(listResp{Error: err.Error()})
		return
	}
	if metas == nil {
		metas = []domain.PuzzleMeta{}
	}
	_ = json.NewEncoder(w).Encode(listResp{Puzzles: metas})
}
