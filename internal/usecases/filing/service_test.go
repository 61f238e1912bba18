package filing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	serprodomain "github.com/contafy/bookkeeper-api/infrastructure/integrator/serpro/domain"
	serpromocks "github.com/contafy/bookkeeper-api/infrastructure/integrator/serpro/mocks"
)

func TestGenerateDas_StripsCnpjMask(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	want := &serprodomain.Das{PdfInBase64: "JVBERi0="}

	mockClient := serpromocks.NewMockClient(ctrl)
	mockClient.EXPECT().
		GenerateDas("12345678000190", "202505").
		Return(want, nil)

	service := &Service{gateway: mockClient}

	das, err := service.GenerateDas("12.345.678/0001-90", "202505")
	assert.NoError(t, err)
	assert.Equal(t, want, das)
}

func TestGenerateDas_PassesBareCnpjThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := serpromocks.NewMockClient(ctrl)
	mockClient.EXPECT().
		GenerateDas("12345678000190", "202505").
		Return(&serprodomain.Das{}, nil)

	service := &Service{gateway: mockClient}

	_, err := service.GenerateDas("12345678000190", "202505")
	assert.NoError(t, err)
}
