package integrations_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"droscher.com/MovieCatalog/pkg/integrations"
	imdbweb "droscher.com/MovieCatalog/pkg/integrations/imdb-web"
)

type IntegrationTestSuite struct {
	suite.Suite
}

func TestIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}

func (suite *IntegrationTestSuite) TestGetIntegration() {
	suite.IsType(&imdbweb.ImdbWebIntegration{}, integrations.GetIntegration(imdbweb.IntegrationName, zap.NewNop()))
	suite.Nil(integrations.GetIntegration("letterboxd", zap.NewNop()))
}

func (suite *IntegrationTestSuite) TestGetIntegrations_SkipsUnknown() {
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)

	found := integrations.GetIntegrations([]string{"imdb_web", "letterboxd"}, zap.New(observedZapCore))

	suite.Len(found, 1)
	suite.Equal(1, observedLogs.FilterMessage("unknown movie integration").Len())
}
