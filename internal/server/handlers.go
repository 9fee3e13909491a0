package server

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/limaJavier/boarding/internal/metrics"
	"github.com/limaJavier/boarding/pkg/boarding"
	"github.com/limaJavier/boarding/pkg/layout"
	"github.com/limaJavier/boarding/pkg/render"
	"github.com/samber/lo"
)

type strategyResponse struct {
	Id    boarding.StrategyId `json:"id"`
	Title string              `json:"title"`
}

type groupResponse struct {
	Group boarding.Group `json:"group"`
	Label string         `json:"label"`
	Seats int            `json:"seats"`
}

type seatResponse struct {
	Seat   string          `json:"seat"`
	Row    int             `json:"row"`
	Column string          `json:"column"`
	Class  string          `json:"class"`
	Group  *boarding.Group `json:"group,omitempty"`
	Value  *float64        `json:"value,omitempty"`
	Rank   int             `json:"rank"`
}

type assignmentResponse struct {
	Strategy      boarding.StrategyId `json:"strategy"`
	Title         string              `json:"title"`
	Continuous    bool                `json:"continuous"`
	BoardingOrder []boarding.Group    `json:"boardingOrder"`
	Groups        []groupResponse     `json:"groups"`
	Seats         []seatResponse      `json:"seats"`
}

func (server *Server) health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func (server *Server) listStrategies(c echo.Context) error {
	return c.JSON(http.StatusOK, lo.Map(boarding.ListStrategies(), func(id boarding.StrategyId, _ int) strategyResponse {
		return strategyResponse{Id: id, Title: id.Title()}
	}))
}

func (server *Server) assignment(c echo.Context) error {
	assignment, err := server.assign(c)
	if err != nil {
		return httpError(err)
	}

	response := assignmentResponse{
		Strategy:      assignment.Strategy(),
		Title:         assignment.Strategy().Title(),
		Continuous:    assignment.Continuous(),
		BoardingOrder: assignment.BoardingOrder(),
		Groups:        make([]groupResponse, 0, assignment.Groups()),
		Seats:         make([]seatResponse, 0, server.grid.Size()),
	}
	for group := boarding.Group(1); int(group) <= assignment.Groups(); group++ {
		response.Groups = append(response.Groups, groupResponse{
			Group: group,
			Label: assignment.Label(group),
			Seats: len(assignment.Members(group)),
		})
	}
	for _, seat := range assignment.AllSeats() {
		entry, err := server.describeSeat(assignment, seat)
		if err != nil {
			return httpError(err)
		}
		response.Seats = append(response.Seats, entry)
	}
	return c.JSON(http.StatusOK, response)
}

func (server *Server) seat(c echo.Context) error {
	seat, err := layout.ParseSeatId(c.Param("seat"))
	if err != nil {
		return httpError(fmt.Errorf("%w: %v", boarding.ErrUnknownSeat, err))
	}
	assignment, err := server.assign(c)
	if err != nil {
		return httpError(err)
	}

	entry, err := server.describeSeat(assignment, seat)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, entry)
}

func (server *Server) describeSeat(assignment *boarding.Assignment, seat layout.SeatId) (seatResponse, error) {
	rank, err := assignment.Rank(seat)
	if err != nil {
		return seatResponse{}, err
	}
	class, err := server.grid.ClassOf(seat.Column)
	if err != nil {
		return seatResponse{}, err
	}

	entry := seatResponse{
		Seat:   seat.String(),
		Row:    seat.Row,
		Column: seat.Column,
		Class:  class.String(),
		Rank:   rank,
	}
	if assignment.Continuous() {
		value, err := assignment.ValueOf(seat)
		if err != nil {
			return seatResponse{}, err
		}
		entry.Value = &value
	} else {
		group, err := assignment.GroupOf(seat)
		if err != nil {
			return seatResponse{}, err
		}
		entry.Group = &group
	}
	return entry, nil
}

func (server *Server) strategyChart(format string) echo.HandlerFunc {
	return func(c echo.Context) error {
		assignment, err := server.assign(c)
		if err != nil {
			return httpError(err)
		}
		chart, err := render.AssignmentChart(assignment)
		if err != nil {
			return httpError(err)
		}
		return server.renderChart(c, format, chart)
	}
}

func (server *Server) layoutChart(format string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return server.renderChart(c, format, render.LayoutChart(server.grid, server.aircraft))
	}
}

func (server *Server) renderChart(c echo.Context, format string, chart render.Chart) error {
	renderer, err := render.NewRenderer(format)
	if err != nil {
		return httpError(err)
	}

	var out bytes.Buffer
	if err := renderer.Render(&out, chart); err != nil {
		return httpError(err)
	}
	metrics.ChartsRenderedTotal.WithLabelValues(format).Inc()
	return c.Blob(http.StatusOK, renderer.ContentType(), out.Bytes())
}

// workbook writes the seating chart followed by every strategy, one sheet each
func (server *Server) workbook(c echo.Context) error {
	options, err := server.queryOptions(c)
	if err != nil {
		return httpError(err)
	}
	assignments, err := boarding.AssignAll(server.grid, options)
	if err != nil {
		return httpError(err)
	}

	charts := []render.Chart{render.LayoutChart(server.grid, server.aircraft)}
	for _, assignment := range assignments {
		chart, err := render.AssignmentChart(assignment)
		if err != nil {
			return httpError(err)
		}
		charts = append(charts, chart)
	}

	var out bytes.Buffer
	if err := render.WriteWorkbook(&out, charts); err != nil {
		return httpError(err)
	}
	metrics.ChartsRenderedTotal.WithLabelValues("xlsx").Inc()
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="boarding_strategies.xlsx"`)
	return c.Blob(http.StatusOK, render.NewWorkbookRenderer().ContentType(), out.Bytes())
}
