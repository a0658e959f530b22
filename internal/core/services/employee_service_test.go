package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/pos_backend/internal/apperrors"
	"github.com/SscSPs/pos_backend/internal/core/domain"
	portssvc "github.com/SscSPs/pos_backend/internal/core/ports/services"
	"github.com/SscSPs/pos_backend/internal/core/services"
	"github.com/SscSPs/pos_backend/internal/dto"
	"github.com/SscSPs/pos_backend/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type EmployeeServiceTestSuite struct {
	suite.Suite
	employeeRepo *MockEmployeeRepository
	service      portssvc.EmployeeSvcFacade
	auth         portssvc.AuthSvc
}

func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.employeeRepo = new(MockEmployeeRepository)
	suite.service = services.NewEmployeeService(
		suite.employeeRepo,
		services.WithIDGenerator(&sequenceIDs{}),
		services.WithClock(fixedClock),
	)
	suite.auth = services.NewAuthService(suite.service, "test-secret", time.Hour, "pos-test")
}

func (suite *EmployeeServiceTestSuite) storedEmployee(role domain.EmployeeRole, pin string) *domain.Employee {
	hash, err := utils.HashPin(pin)
	suite.Require().NoError(err)
	return &domain.Employee{EmployeeID: "emp_admin", Name: "Admin", Phone: "+998900000000", Role: role, PinHash: hash}
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_ByAdmin() {
	ctx := context.Background()
	suite.employeeRepo.On("FindEmployeeByID", ctx, "emp_admin").Return(suite.storedEmployee(domain.RoleAdmin, "0000"), nil)
	suite.employeeRepo.On("SaveEmployee", ctx, mock.MatchedBy(func(e domain.Employee) bool {
		return e.EmployeeID == "emp_1" && e.Role == domain.RoleCashier && utils.CheckPinHash("1234", e.PinHash)
	})).Return(nil).Once()

	employee, err := suite.service.CreateEmployee(ctx, "emp_admin", dto.CreateEmployeeRequest{
		Name: "Dilnoza", Phone: "+998901234567", Role: domain.RoleCashier, Pin: "1234",
	})

	suite.Require().NoError(err)
	suite.Equal("emp_1", employee.EmployeeID)
	suite.Equal("emp_admin", employee.CreatedBy)
	suite.employeeRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_ByCashierIsForbidden() {
	ctx := context.Background()
	suite.employeeRepo.On("FindEmployeeByID", ctx, "emp_admin").Return(suite.storedEmployee(domain.RoleCashier, "0000"), nil)

	_, err := suite.service.CreateEmployee(ctx, "emp_admin", dto.CreateEmployeeRequest{
		Name: "Dilnoza", Phone: "+998901234567", Role: domain.RoleCashier, Pin: "1234",
	})

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.employeeRepo.AssertNotCalled(suite.T(), "SaveEmployee", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_InvalidPin() {
	_, err := suite.service.CreateEmployee(context.Background(), "emp_admin", dto.CreateEmployeeRequest{
		Name: "Dilnoza", Phone: "+998901234567", Role: domain.RoleCashier, Pin: "12a4",
	})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *EmployeeServiceTestSuite) TestUpdateEmployee_ByAdminRehashesPin() {
	ctx := context.Background()
	suite.employeeRepo.On("FindEmployeeByID", ctx, "emp_admin").Return(suite.storedEmployee(domain.RoleAdmin, "0000"), nil)
	oldHash, err := utils.HashPin("1234")
	suite.Require().NoError(err)
	target := &domain.Employee{EmployeeID: "emp_2", Name: "Dilnoza", Phone: "+998901234567", Role: domain.RoleCashier, PinHash: oldHash}
	suite.employeeRepo.On("FindEmployeeByID", ctx, "emp_2").Return(target, nil)
	suite.employeeRepo.On("UpdateEmployee", ctx, mock.MatchedBy(func(e domain.Employee) bool {
		return e.EmployeeID == "emp_2" && e.Name == "Dilnoza" && e.Phone == "+998901234567" &&
			e.Role == domain.RoleAdmin && e.LastUpdatedBy == "emp_admin" &&
			utils.CheckPinHash("4321", e.PinHash) && !utils.CheckPinHash("1234", e.PinHash)
	})).Return(nil).Once()

	role := domain.RoleAdmin
	pin := "4321"
	employee, err := suite.service.UpdateEmployee(ctx, "emp_admin", "emp_2", dto.UpdateEmployeeRequest{Role: &role, Pin: &pin})

	suite.Require().NoError(err)
	suite.Equal(domain.RoleAdmin, employee.Role)
	suite.True(employee.LastUpdatedAt.Equal(fixedNow))
	suite.employeeRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestUpdateEmployee_KeepsPinWhenOmitted() {
	ctx := context.Background()
	suite.employeeRepo.On("FindEmployeeByID", ctx, "emp_admin").Return(suite.storedEmployee(domain.RoleAdmin, "0000"), nil)
	target := suite.storedEmployee(domain.RoleCashier, "1234")
	target.EmployeeID = "emp_2"
	suite.employeeRepo.On("FindEmployeeByID", ctx, "emp_2").Return(target, nil)
	suite.employeeRepo.On("UpdateEmployee", ctx, mock.MatchedBy(func(e domain.Employee) bool {
		return e.Name == "Aziz" && utils.CheckPinHash("1234", e.PinHash)
	})).Return(nil).Once()

	name := "Aziz"
	_, err := suite.service.UpdateEmployee(ctx, "emp_admin", "emp_2", dto.UpdateEmployeeRequest{Name: &name})

	suite.Require().NoError(err)
	suite.employeeRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestUpdateEmployee_ByCashierIsForbidden() {
	ctx := context.Background()
	suite.employeeRepo.On("FindEmployeeByID", ctx, "emp_admin").Return(suite.storedEmployee(domain.RoleCashier, "0000"), nil)

	pin := "4321"
	_, err := suite.service.UpdateEmployee(ctx, "emp_admin", "emp_admin", dto.UpdateEmployeeRequest{Pin: &pin})

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.employeeRepo.AssertNotCalled(suite.T(), "UpdateEmployee", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestUpdateEmployee_UnknownTarget() {
	ctx := context.Background()
	suite.employeeRepo.On("FindEmployeeByID", ctx, "emp_admin").Return(suite.storedEmployee(domain.RoleAdmin, "0000"), nil)
	suite.employeeRepo.On("FindEmployeeByID", ctx, "emp_missing").Return(nil, apperrors.ErrNotFound)

	name := "Aziz"
	_, err := suite.service.UpdateEmployee(ctx, "emp_admin", "emp_missing", dto.UpdateEmployeeRequest{Name: &name})

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.employeeRepo.AssertNotCalled(suite.T(), "UpdateEmployee", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestUpdateEmployee_InvalidPin() {
	pin := "12"
	_, err := suite.service.UpdateEmployee(context.Background(), "emp_admin", "emp_2", dto.UpdateEmployeeRequest{Pin: &pin})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *EmployeeServiceTestSuite) TestEnsureBootstrapAdmin_CreatesWhenEmpty() {
	ctx := context.Background()
	suite.employeeRepo.On("CountEmployees", ctx).Return(0, nil)
	suite.employeeRepo.On("SaveEmployee", ctx, mock.MatchedBy(func(e domain.Employee) bool {
		return e.Role == domain.RoleAdmin && e.CreatedBy == e.EmployeeID
	})).Return(nil).Once()

	admin, err := suite.service.EnsureBootstrapAdmin(ctx, "Owner", "+998900000001", "9999")

	suite.Require().NoError(err)
	suite.Require().NotNil(admin)
	suite.Equal(domain.RoleAdmin, admin.Role)
}

func (suite *EmployeeServiceTestSuite) TestEnsureBootstrapAdmin_SkipsWhenEmployeesExist() {
	ctx := context.Background()
	suite.employeeRepo.On("CountEmployees", ctx).Return(3, nil)

	admin, err := suite.service.EnsureBootstrapAdmin(ctx, "Owner", "+998900000001", "9999")

	suite.NoError(err)
	suite.Nil(admin)
	suite.employeeRepo.AssertNotCalled(suite.T(), "SaveEmployee", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	stored := suite.storedEmployee(domain.RoleAdmin, "4321")
	suite.employeeRepo.On("FindEmployeeByPhone", ctx, stored.Phone).Return(stored, nil)

	resp, err := suite.auth.Login(ctx, dto.LoginRequest{Phone: stored.Phone, Pin: "4321"})

	suite.Require().NoError(err)
	suite.Equal("Bearer", resp.TokenType)
	suite.Equal("emp_admin", resp.Employee.ID)

	claims, err := utils.ParseAndValidateJWT(resp.AccessToken, "test-secret")
	suite.Require().NoError(err)
	suite.Equal("emp_admin", claims.Subject)
	suite.Equal("pos-test", claims.Issuer)
}

func (suite *EmployeeServiceTestSuite) TestLogin_WrongPin() {
	ctx := context.Background()
	stored := suite.storedEmployee(domain.RoleAdmin, "4321")
	suite.employeeRepo.On("FindEmployeeByPhone", ctx, stored.Phone).Return(stored, nil)

	resp, err := suite.auth.Login(ctx, dto.LoginRequest{Phone: stored.Phone, Pin: "1111"})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *EmployeeServiceTestSuite) TestLogin_UnknownPhone() {
	ctx := context.Background()
	suite.employeeRepo.On("FindEmployeeByPhone", ctx, "+998000").Return(nil, apperrors.ErrNotFound)

	_, err := suite.auth.Login(ctx, dto.LoginRequest{Phone: "+998000", Pin: "1111"})

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestEmployeeService(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
