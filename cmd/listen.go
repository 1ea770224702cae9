package main

import (
	"net/http"

	"assetmgmt/pkg/config"
	"assetmgmt/pkg/server"
)

func listen(srv *http.Server, cfg *config.Config) error {
	if !cfg.TLS.EnableTLS {
		return srv.ListenAndServe()
	}

	tlsConfig, certFile, keyFile, err := server.TLSConfig(cfg.TLS, cfg.IsProduction())
	if err != nil {
		return err
	}
	srv.TLSConfig = tlsConfig
	return srv.ListenAndServeTLS(certFile, keyFile)
}
