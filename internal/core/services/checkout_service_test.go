package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/pos_ledger_app/internal/apperrors"
	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/pos_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger_app/internal/core/services"
	"github.com/SscSPs/pos_ledger_app/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type CheckoutServiceTestSuite struct {
	suite.Suite
	mockOrders *MockOrderAppender
	service    portssvc.CheckoutSvc
	ctx        context.Context
}

func (suite *CheckoutServiceTestSuite) SetupTest() {
	suite.mockOrders = new(MockOrderAppender)
	suite.service = services.NewCheckoutService(suite.mockOrders, nil)
	suite.ctx = context.Background()
}

func (suite *CheckoutServiceTestSuite) fillCart() {
	_, err := suite.service.AddLine(suite.ctx, domain.CartLine{ProductID: 1, Name: "Coffee", UnitPrice: dec("10.00"), Quantity: 2})
	suite.Require().NoError(err)
	_, err = suite.service.AddLine(suite.ctx, domain.CartLine{ProductID: 2, Name: "Cake", UnitPrice: dec("5.00"), Quantity: 1})
	suite.Require().NoError(err)
	_, err = suite.service.SetDetails(suite.ctx, domain.CartDetails{CashierName: "  Sam ", Note: "table 4"})
	suite.Require().NoError(err)
}

func (suite *CheckoutServiceTestSuite) TestNewCartDefaults() {
	snap := suite.service.Snapshot(suite.ctx)

	suite.Equal(domain.StateBuilding, snap.State)
	suite.Empty(snap.Lines)
	suite.Equal(domain.PaymentCash, snap.Details.PaymentMethod)
	suite.Equal(domain.OrderCompleted, snap.Details.Status)
	suite.Equal([]string{accounting.MsgEmptyCart, accounting.MsgMissingCashier}, snap.Warnings)
}

func (suite *CheckoutServiceTestSuite) TestAddLinePrependsAndIncrements() {
	suite.fillCart()

	snap, err := suite.service.AddLine(suite.ctx, domain.CartLine{ProductID: 1, Name: "Coffee", UnitPrice: dec("10.00"), Quantity: 0})
	suite.Require().NoError(err)

	suite.Require().Len(snap.Lines, 2)
	suite.Equal(int64(2), snap.Lines[0].ProductID)
	suite.Equal(int64(1), snap.Lines[1].ProductID)
	suite.Equal(3, snap.Lines[1].Quantity)
	suite.True(snap.Totals.Subtotal.Equal(dec("35")))
	suite.Equal("Sam", snap.Details.CashierName)
}

func (suite *CheckoutServiceTestSuite) TestAddLineRejectsNegativePrice() {
	_, err := suite.service.AddLine(suite.ctx, domain.CartLine{ProductID: 1, UnitPrice: dec("-1"), Quantity: 1})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CheckoutServiceTestSuite) TestUpdateQuantity() {
	suite.fillCart()

	snap, err := suite.service.UpdateQuantity(suite.ctx, 2, 4)
	suite.Require().NoError(err)
	suite.Equal(4, snap.Lines[0].Quantity)

	snap, err = suite.service.UpdateQuantity(suite.ctx, 2, 0)
	suite.Require().NoError(err)
	suite.Require().Len(snap.Lines, 1)
	suite.Equal(int64(1), snap.Lines[0].ProductID)

	_, err = suite.service.UpdateQuantity(suite.ctx, 99, 1)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CheckoutServiceTestSuite) TestRemoveLineIsIdempotent() {
	suite.fillCart()

	_, err := suite.service.RemoveLine(suite.ctx, 1)
	suite.Require().NoError(err)
	snap, err := suite.service.RemoveLine(suite.ctx, 1)
	suite.Require().NoError(err)
	suite.Len(snap.Lines, 1)
}

func (suite *CheckoutServiceTestSuite) TestDiscountAndFeeTotals() {
	suite.fillCart()

	_, err := suite.service.SetDiscount(suite.ctx, domain.DiscountSpec{Kind: domain.DiscountPercent, Value: dec("10")})
	suite.Require().NoError(err)
	snap, err := suite.service.SetFee(suite.ctx, dec("2.50"))
	suite.Require().NoError(err)

	suite.True(snap.Totals.EffectiveDiscount.Equal(dec("2.5")))
	suite.True(snap.Totals.GrandTotal.Equal(dec("25")))
	suite.Empty(snap.Warnings)
}

func (suite *CheckoutServiceTestSuite) TestSetDiscountRejectsUnknownKind() {
	_, err := suite.service.SetDiscount(suite.ctx, domain.DiscountSpec{Kind: "bogus", Value: dec("1")})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CheckoutServiceTestSuite) TestSetDetailsRejectsUnknownPayment() {
	_, err := suite.service.SetDetails(suite.ctx, domain.CartDetails{CashierName: "Sam", PaymentMethod: "cheque"})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CheckoutServiceTestSuite) TestConfirmBlockedByWarnings() {
	snap, err := suite.service.Confirm(suite.ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal(domain.StateBuilding, snap.State)
	suite.Contains(apperrors.ValidationMessages(err), accounting.MsgEmptyCart)
}

func (suite *CheckoutServiceTestSuite) TestConfirmBlockedByOversizedDiscount() {
	suite.fillCart()
	_, err := suite.service.SetDiscount(suite.ctx, domain.DiscountSpec{Kind: domain.DiscountFixed, Value: dec("100")})
	suite.Require().NoError(err)

	_, err = suite.service.Confirm(suite.ctx)

	suite.Require().Error(err)
	suite.Contains(apperrors.ValidationMessages(err), accounting.MsgDiscountTooLarge)
}

func (suite *CheckoutServiceTestSuite) TestConfirmingLocksCartUntilCancel() {
	suite.fillCart()

	snap, err := suite.service.Confirm(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(domain.StateConfirming, snap.State)

	_, err = suite.service.Confirm(suite.ctx)
	suite.NoError(err)

	_, err = suite.service.AddLine(suite.ctx, domain.CartLine{ProductID: 3, UnitPrice: dec("1"), Quantity: 1})
	suite.ErrorIs(err, apperrors.ErrInvalidState)

	snap, err = suite.service.Cancel(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(domain.StateBuilding, snap.State)
	suite.Len(snap.Lines, 2)
}

func (suite *CheckoutServiceTestSuite) TestCheckoutRequiresConfirm() {
	suite.fillCart()

	order, err := suite.service.Checkout(suite.ctx)

	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockOrders.AssertNotCalled(suite.T(), "AppendOrder", mock.Anything, mock.Anything)
}

func (suite *CheckoutServiceTestSuite) TestCheckoutSuccessResetsCart() {
	suite.fillCart()
	_, err := suite.service.SetDiscount(suite.ctx, domain.DiscountSpec{Kind: domain.DiscountFixed, Value: dec("5")})
	suite.Require().NoError(err)
	_, err = suite.service.Confirm(suite.ctx)
	suite.Require().NoError(err)

	saved := &domain.LocalOrder{ID: "order-1"}
	suite.mockOrders.On("AppendOrder", suite.ctx, mock.MatchedBy(func(d domain.OrderDraft) bool {
		return len(d.Items) == 2 &&
			d.CashierName == "Sam" &&
			d.PaymentMethod == "pos-cash" &&
			d.PaymentTitle == "Cash" &&
			d.Discount.Equal(dec("5")) &&
			d.Note == "table 4" &&
			d.Status == domain.OrderCompleted
	})).Return(saved, nil).Once()

	order, err := suite.service.Checkout(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal("order-1", order.ID)

	snap := suite.service.Snapshot(suite.ctx)
	suite.Equal(domain.StateCompleted, snap.State)
	suite.Empty(snap.Lines)
	suite.True(snap.Discount.Value.IsZero())
	suite.True(snap.Fee.IsZero())
	suite.Empty(snap.Details.Note)
	suite.Equal("Sam", snap.Details.CashierName)
	suite.Require().NotNil(snap.LastOrder)
	suite.Equal("order-1", snap.LastOrder.ID)
	suite.mockOrders.AssertExpectations(suite.T())

	snap, err = suite.service.AddLine(suite.ctx, domain.CartLine{ProductID: 5, UnitPrice: dec("1"), Quantity: 1})
	suite.Require().NoError(err)
	suite.Equal(domain.StateBuilding, snap.State)
	suite.Nil(snap.LastOrder)
}

func (suite *CheckoutServiceTestSuite) TestCheckoutFailureKeepsCart() {
	suite.fillCart()
	_, err := suite.service.Confirm(suite.ctx)
	suite.Require().NoError(err)
	suite.mockOrders.On("AppendOrder", suite.ctx, mock.AnythingOfType("domain.OrderDraft")).Return(nil, assert.AnError).Once()

	order, err := suite.service.Checkout(suite.ctx)

	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrPersistence)
	snap := suite.service.Snapshot(suite.ctx)
	suite.Equal(domain.StateBuilding, snap.State)
	suite.Len(snap.Lines, 2)
	suite.Equal("table 4", snap.Details.Note)
}

func (suite *CheckoutServiceTestSuite) TestCancelOutsideConfirm() {
	snap, err := suite.service.Cancel(suite.ctx)
	suite.NoError(err)
	suite.Equal(domain.StateBuilding, snap.State)
}

func TestCheckoutServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CheckoutServiceTestSuite))
}
