package public

import (
	"context"
	"errors"
	"net/http"

	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"
	"github.com/labstack/echo/v4"

	"github.com/asamuj/nicks/internal/server/middleware"
	"github.com/asamuj/nicks/x/nicks/types"
)

// Registry is the read side of the host the server exposes.
type Registry interface {
	Height() int64
	Params() types.Params
	NameOf(addr sdk.AccAddress) (*types.QueryNameOfResponse, error)
	Reserved(addr sdk.AccAddress, denom string) (*types.QueryReservedResponse, error)
	Balance(addr sdk.AccAddress, denom string) (sdk.Coin, error)
	AllNames(pagination *query.PageRequest) (*types.QueryAllNamesResponse, error)
}

type Server struct {
	e        *echo.Echo
	registry Registry
	logger   log.Logger
}

func NewServer(registry Registry, logger log.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.TransparentErrorHandler

	s := &Server{
		e:        e,
		registry: registry,
		logger:   logger.With("module", "server"),
	}

	e.Use(middleware.Logging(s.logger))
	g := e.Group("/v1/")

	g.GET("status", s.getStatus)
	g.GET("params", s.getParams)

	g.GET("names", s.getAllNames)
	g.GET("names/:address", s.getNameByAddress)

	g.GET("reserved/:address", s.getReserved)
	g.GET("balances/:address", s.getBalance)

	return s
}

// Start serves until Shutdown is called.
func (s *Server) Start(addr string) error {
	s.logger.Info("Starting public server", "address", addr)
	if err := s.e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.e.ServeHTTP(w, r)
}

func (s *Server) getStatus(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, StatusResponse{Status: "ok", Height: s.registry.Height()})
}

func (s *Server) getParams(ctx echo.Context) error {
	params := s.registry.Params()
	return ctx.JSON(http.StatusOK, ParamsResponse{
		MaxLength:      params.MaxLength,
		ReservationFee: params.ReservationFee,
	})
}
