package main

import (
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"git.canoozie.net/riddling/tinkerbind/pkg/graph"
	"git.canoozie.net/riddling/tinkerbind/pkg/model"
	"git.canoozie.net/riddling/tinkerbind/pkg/native"
	"git.canoozie.net/riddling/tinkerbind/pkg/server"
	"github.com/spf13/viper"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

func main() {
	viper.SetDefault("port", "50051")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("native_lib", "")

	viper.SetEnvPrefix("TINKERBIND")
	viper.AutomaticEnv()

	viper.SetConfigName("tinkerbind")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatalf("Failed to read config file: %v", err)
		}
	}

	logger := model.NewDefaultLogger(model.ParseLogLevel(viper.GetString("log_level")))
	logger.Info("Starting tinkerbind gRPC server")

	// An explicit native_lib setting bypasses the candidate search
	broker, err := native.Open(viper.GetString("native_lib"))
	if err != nil {
		log.Fatalf("Failed to load native library: %v", err)
	}
	logger.Info("Loaded native library from %s", broker.Path())

	g, err := graph.Open(graph.WithAPI(broker), graph.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to open graph: %v", err)
	}
	defer g.Close()

	grpcServer := grpc.NewServer()
	server.RegisterServer(grpcServer, g, logger)
	reflection.Register(grpcServer)

	port := viper.GetString("port")
	lis, err := net.Listen("tcp", fmt.Sprintf(":%s", port))
	if err != nil {
		log.Fatalf("Failed to listen: %v", err)
	}

	// Handle graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		logger.Info("Shutting down gRPC server")
		grpcServer.GracefulStop()
	}()

	logger.Info("Starting gRPC server on port %s", port)
	if err := grpcServer.Serve(lis); err != nil {
		log.Fatalf("Failed to serve: %v", err)
	}
}
