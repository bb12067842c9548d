package service

import (
	"github.com/MKhiriev/go-chat-gate/internal/adapter"
	"github.com/MKhiriev/go-chat-gate/internal/config"
	"github.com/MKhiriev/go-chat-gate/internal/crypto"
	"github.com/MKhiriev/go-chat-gate/internal/logger"
	"github.com/MKhiriev/go-chat-gate/internal/store"
	"github.com/MKhiriev/go-chat-gate/internal/validators"
)

type ClientServices struct {
	KeyExchange ClientKeyExchangeService
	Login       ClientLoginService
	Gate        AccessGate
	API         ClientAPIService
}

func NewClientServices(
	storages *store.ClientStorages,
	authAdapter adapter.AuthAdapter,
	gatewayAdapter adapter.GatewayAdapter,
	encryptor crypto.Encryptor,
	appCfg config.ClientApp,
	logger *logger.Logger,
) *ClientServices {
	keys := NewClientKeyExchangeService(authAdapter, encryptor)

	return &ClientServices{
		KeyExchange: keys,
		Login:       NewClientLoginService(validators.NewCredentialsValidator(), keys, authAdapter, storages.Credentials, logger),
		Gate:        NewAccessGate(storages.Credentials),
		API:         NewClientAPIService(storages.Credentials, gatewayAdapter, appCfg.ProbePath),
	}
}
