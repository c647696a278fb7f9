package main

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/framecraft/framepos/internal/invoice"
	"github.com/framecraft/framepos/internal/pricing"
)

// quoteRequest references catalog records by ID; the handler resolves them to
// wholesale prices so the client never supplies costs directly.
type quoteRequest struct {
	Artwork struct {
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
	} `json:"artwork"`
	Frames []struct {
		FrameID int64  `json:"frame_id"`
		Method  string `json:"method"`
	} `json:"frames"`
	Mats []struct {
		MatID  int64   `json:"mat_id"`
		Width  float64 `json:"width"`
		Reveal float64 `json:"reveal"`
	} `json:"mats"`
	GlazingID      *int64  `json:"glazing_id"`
	IncludeBacking bool    `json:"include_backing"`
	ServiceIDs     []int64 `json:"service_ids"`
	MiscCharges    []struct {
		Kind   string  `json:"kind"`
		Amount float64 `json:"amount"`
	} `json:"misc_charges"`
	Discount *struct {
		Kind   string  `json:"kind"`
		Amount float64 `json:"amount"`
	} `json:"discount"`
}

// buildOrderInput resolves catalog references and the pricing configuration
// into a complete engine input.
func (s *server) buildOrderInput(req quoteRequest) (pricing.OrderInput, error) {
	cfg, err := s.store.GetPricingConfig()
	if err != nil {
		return pricing.OrderInput{}, err
	}

	in := pricing.OrderInput{
		Artwork: pricing.Dimensions{Width: req.Artwork.Width, Height: req.Artwork.Height},
		TaxRate: cfg.TaxRatePercent / 100,
	}

	for _, f := range req.Frames {
		frame, err := s.store.GetFrame(f.FrameID)
		if err != nil {
			return pricing.OrderInput{}, fmt.Errorf("frame %d: %w", f.FrameID, err)
		}
		in.Frames = append(in.Frames, pricing.FrameLayer{
			WholesalePerFoot: frame.WholesalePerFoot,
			Method:           pricing.PricingMethod(f.Method),
			MouldingWidth:    frame.MouldingWidth,
		})
	}

	for _, m := range req.Mats {
		mat, err := s.store.GetMat(m.MatID)
		if err != nil {
			return pricing.OrderInput{}, fmt.Errorf("mat %d: %w", m.MatID, err)
		}
		in.Mats = append(in.Mats, pricing.MatLayer{
			Width:                  m.Width,
			Reveal:                 m.Reveal,
			WholesalePerSquareInch: mat.WholesalePerSquareInch,
		})
	}

	if req.GlazingID != nil {
		glazing, err := s.store.GetGlazing(*req.GlazingID)
		if err != nil {
			return pricing.OrderInput{}, fmt.Errorf("glazing %d: %w", *req.GlazingID, err)
		}
		in.Glass = &pricing.GlassSpec{Price: glazing.Price}
	}

	if req.IncludeBacking {
		backing := cfg.BackingPrice
		in.Backing = &backing
	}

	for _, id := range req.ServiceIDs {
		svc, err := s.store.GetService(id)
		if err != nil {
			return pricing.OrderInput{}, fmt.Errorf("service %d: %w", id, err)
		}
		in.Services = append(in.Services, pricing.SpecialService{Name: svc.Name, Price: svc.Price})
	}

	for _, charge := range req.MiscCharges {
		in.MiscCharges = append(in.MiscCharges, pricing.MiscCharge{
			Kind:   pricing.ChargeKind(charge.Kind),
			Amount: charge.Amount,
		})
	}

	if req.Discount != nil {
		in.Discount = &pricing.Discount{
			Kind:   pricing.ChargeKind(req.Discount.Kind),
			Amount: req.Discount.Amount,
		}
	}

	return in, nil
}

func (s *server) handleQuote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if !readJSON(w, r, &req) {
		return
	}

	in, err := s.buildOrderInput(req)
	if err != nil {
		writeQuoteError(w, err)
		return
	}

	breakdown, err := pricing.OrderTotal(in)
	if err != nil {
		writeQuoteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, breakdown)
}

type orderRequest struct {
	quoteRequest
	Customer struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
		Email string `json:"email"`
	} `json:"customer"`
	Notes string `json:"notes"`
}

type orderResponse struct {
	ID        int64             `json:"id"`
	Breakdown pricing.Breakdown `json:"breakdown"`
}

func (s *server) handleOrderCreate(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if !readJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Customer.Name) == "" {
		writeError(w, http.StatusBadRequest, "customer name is required")
		return
	}

	in, err := s.buildOrderInput(req.quoteRequest)
	if err != nil {
		writeQuoteError(w, err)
		return
	}

	breakdown, err := pricing.OrderTotal(in)
	if err != nil {
		writeQuoteError(w, err)
		return
	}

	breakdownJSON, err := json.Marshal(breakdown)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to encode breakdown")
		return
	}

	result, err := s.db.Exec(`
		INSERT INTO orders (customer_name, customer_phone, customer_email, notes, breakdown_json, total)
		VALUES (?, ?, ?, ?, ?, ?)
	`, strings.TrimSpace(req.Customer.Name), strings.TrimSpace(req.Customer.Phone),
		strings.TrimSpace(req.Customer.Email), strings.TrimSpace(req.Notes),
		string(breakdownJSON), breakdown.Total)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save order")
		return
	}

	id, err := result.LastInsertId()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save order")
		return
	}

	writeJSON(w, http.StatusCreated, orderResponse{ID: id, Breakdown: breakdown})
}

type orderListItem struct {
	ID           int64   `json:"id"`
	CreatedAt    string  `json:"created_at"`
	CustomerName string  `json:"customer_name"`
	Total        float64 `json:"total"`
}

func (s *server) handleOrdersList(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	orders, err := s.listOrders(query)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load orders")
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (s *server) listOrders(query string) ([]orderListItem, error) {
	search := "%" + query + "%"
	rows, err := s.db.Query(`
		SELECT id, created_at, customer_name, total
		FROM orders
		WHERE (? = '' OR customer_name LIKE ? OR COALESCE(notes, '') LIKE ?)
		ORDER BY datetime(created_at) DESC, id DESC
	`, query, search, search)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]orderListItem, 0)
	for rows.Next() {
		var item orderListItem
		if err := rows.Scan(&item.ID, &item.CreatedAt, &item.CustomerName, &item.Total); err != nil {
			return nil, err
		}
		orders = append(orders, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func (s *server) handleOrderInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var createdAtRaw string
	var customerName, customerPhone, customerEmail, notes, breakdownJSON string
	err := s.db.QueryRow(`
		SELECT created_at, customer_name, COALESCE(customer_phone, ''), COALESCE(customer_email, ''), COALESCE(notes, ''), breakdown_json
		FROM orders
		WHERE id = ?
	`, id).Scan(&createdAtRaw, &customerName, &customerPhone, &customerEmail, &notes, &breakdownJSON)
	if errors.Is(err, sql.ErrNoRows) {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load order")
		return
	}

	var breakdown pricing.Breakdown
	if err := json.Unmarshal([]byte(breakdownJSON), &breakdown); err != nil {
		writeError(w, http.StatusInternalServerError, "stored breakdown is corrupt")
		return
	}

	cfg, err := s.store.GetPricingConfig()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load pricing config")
		return
	}

	// SQLite CURRENT_TIMESTAMP format; fall back to now for odd rows.
	createdAt, err := time.Parse("2006-01-02 15:04:05", createdAtRaw)
	if err != nil {
		createdAt = time.Now()
	}

	pdfBytes, err := invoice.Render(invoice.Invoice{
		Number:    fmt.Sprintf("FP-%d", id),
		CreatedAt: createdAt,
		Customer:  invoice.Customer{Name: customerName, Phone: customerPhone, Email: customerEmail},
		Notes:     notes,
		Breakdown: breakdown,
		Currency:  cfg.Currency,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to render invoice")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="invoice-FP-%d.pdf"`, id))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}
