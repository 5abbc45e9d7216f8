package public

import (
	"encoding/base64"
	"encoding/hex"
	"net/http"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"
	"github.com/labstack/echo/v4"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const maxPageLimit = 100

func (s *Server) getNameByAddress(c echo.Context) error {
	addr, err := addressParam(c)
	if err != nil {
		return err
	}

	s.logger.Debug("GET name", "address", addr.String())

	res, err := s.registry.NameOf(addr)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNameNotFound
		}
		s.logger.Error("Failed to get name", "address", addr.String(), "error", err)
		return err
	}

	return c.JSON(http.StatusOK, NameResponse{
		Address: addr.String(),
		Name:    hex.EncodeToString(res.Name),
		Text:    textOf(res.Name),
		Deposit: res.Deposit,
	})
}

func (s *Server) getAllNames(c echo.Context) error {
	pagination, err := pageRequest(c)
	if err != nil {
		return err
	}

	res, err := s.registry.AllNames(pagination)
	if err != nil {
		s.logger.Error("Failed to list names", "error", err)
		return err
	}

	out := NamesResponse{Names: make([]NameResponse, 0, len(res.Names))}
	for _, named := range res.Names {
		out.Names = append(out.Names, NameResponse{
			Address: named.Address,
			Name:    hex.EncodeToString(named.Name),
			Text:    textOf(named.Name),
			Deposit: named.Deposit,
		})
	}
	if res.Pagination != nil {
		if len(res.Pagination.NextKey) > 0 {
			out.NextKey = base64.URLEncoding.EncodeToString(res.Pagination.NextKey)
		}
		out.Total = res.Pagination.Total
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) getReserved(c echo.Context) error {
	addr, err := addressParam(c)
	if err != nil {
		return err
	}
	denom, err := s.denomParam(c)
	if err != nil {
		return err
	}

	res, err := s.registry.Reserved(addr, denom)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ReservedResponse{Address: addr.String(), Reserved: res.Amount})
}

func (s *Server) getBalance(c echo.Context) error {
	addr, err := addressParam(c)
	if err != nil {
		return err
	}
	denom, err := s.denomParam(c)
	if err != nil {
		return err
	}

	free, err := s.registry.Balance(addr, denom)
	if err != nil {
		return err
	}
	reserved, err := s.registry.Reserved(addr, denom)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, BalanceResponse{Address: addr.String(), Free: free, Reserved: reserved.Amount})
}

func addressParam(c echo.Context) (sdk.AccAddress, error) {
	address := c.Param("address")
	if address == "" {
		return nil, ErrAddressRequired
	}
	addr, err := sdk.AccAddressFromBech32(address)
	if err != nil {
		return nil, ErrInvalidAddress
	}
	return addr, nil
}

// denomParam defaults to the reservation fee denom.
func (s *Server) denomParam(c echo.Context) (string, error) {
	denom := c.QueryParam("denom")
	if denom == "" {
		return s.registry.Params().ReservationFee.Denom, nil
	}
	if err := sdk.ValidateDenom(denom); err != nil {
		return "", ErrInvalidDenom
	}
	return denom, nil
}

func pageRequest(c echo.Context) (*query.PageRequest, error) {
	req := &query.PageRequest{Limit: maxPageLimit, CountTotal: true}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || limit == 0 || limit > maxPageLimit {
			return nil, ErrInvalidLimit
		}
		req.Limit = limit
	}
	if raw := c.QueryParam("key"); raw != "" {
		key, err := base64.URLEncoding.DecodeString(raw)
		if err != nil {
			return nil, ErrInvalidPageKey
		}
		req.Key = key
		// total is only computed on the first page
		req.CountTotal = false
	}
	return req, nil
}
