package keeper_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/asamuj/nicks/testutil/sample"
	"github.com/asamuj/nicks/x/nicks/types"
)

func (s *KeeperTestSuite) TestQueryParams() {
	res, err := s.k.Params(s.ctx, &types.QueryParamsRequest{})
	s.Require().NoError(err)
	s.Require().Equal(types.DefaultMaxLength, res.Params.MaxLength)
	s.Require().Equal(types.DefaultReservationFee.String(), res.Params.ReservationFee.String())

	_, err = s.k.Params(s.ctx, nil)
	s.Require().Equal(codes.InvalidArgument, status.Code(err))
}

func (s *KeeperTestSuite) TestQueryNameOf() {
	participant := sample.AccAddressBytes()
	s.k.SetName(s.ctx, participant, types.NewNameEntry([]byte("alice"), types.DefaultReservationFee))

	res, err := s.k.NameOf(s.ctx, &types.QueryNameOfRequest{Address: participant.String()})
	s.Require().NoError(err)
	s.Require().Equal([]byte("alice"), res.Name)
	s.Require().Equal(types.DefaultReservationFee.String(), res.Deposit.String())

	// reads publish nothing
	s.Require().Empty(s.ctx.EventManager().Events())
}

func (s *KeeperTestSuite) TestQueryNameOf_Errors() {
	_, err := s.k.NameOf(s.ctx, &types.QueryNameOfRequest{Address: sample.AccAddress()})
	s.Require().Equal(codes.NotFound, status.Code(err))

	_, err = s.k.NameOf(s.ctx, &types.QueryNameOfRequest{Address: "invalid"})
	s.Require().Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.k.NameOf(s.ctx, &types.QueryNameOfRequest{})
	s.Require().Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.k.NameOf(s.ctx, nil)
	s.Require().Equal(codes.InvalidArgument, status.Code(err))
}

func (s *KeeperTestSuite) TestQueryReserved() {
	participant := sample.AccAddressBytes()
	reserved := sdk.NewInt64Coin(types.DefaultDenom, 100)

	s.currency.EXPECT().ReservedBalance(s.ctx, participant, types.DefaultDenom).Return(reserved).Times(1)
	res, err := s.k.Reserved(s.ctx, &types.QueryReservedRequest{Address: participant.String()})
	s.Require().NoError(err)
	s.Require().Equal(reserved.String(), res.Amount.String())

	other := sdk.NewInt64Coin("other", 0)
	s.currency.EXPECT().ReservedBalance(s.ctx, participant, "other").Return(other).Times(1)
	res, err = s.k.Reserved(s.ctx, &types.QueryReservedRequest{Address: participant.String(), Denom: "other"})
	s.Require().NoError(err)
	s.Require().True(res.Amount.IsZero())

	_, err = s.k.Reserved(s.ctx, &types.QueryReservedRequest{Address: participant.String(), Denom: "!"})
	s.Require().Equal(codes.InvalidArgument, status.Code(err))
}

func (s *KeeperTestSuite) TestQueryAllNames() {
	for i := 0; i < 5; i++ {
		s.k.SetName(s.ctx, sample.AccAddressBytes(), types.NewNameEntry(sample.Name(i), types.DefaultReservationFee))
	}

	res, err := s.k.AllNames(s.ctx, &types.QueryAllNamesRequest{Pagination: &query.PageRequest{Limit: 2, CountTotal: true}})
	s.Require().NoError(err)
	s.Require().Len(res.Names, 2)
	s.Require().Equal(uint64(5), res.Pagination.Total)
	s.Require().NotEmpty(res.Pagination.NextKey)

	res, err = s.k.AllNames(s.ctx, &types.QueryAllNamesRequest{})
	s.Require().NoError(err)
	s.Require().Len(res.Names, 5)
}
