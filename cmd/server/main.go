package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/bootstrap"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/config"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/router"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/validator"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	env := flag.String("env", "local", "Environment (local|dev|test|production)")
	hashPassword := flag.String("hash-password", "", "print the bcrypt hash for ADMIN_PASSWORD_HASH and exit")
	flag.Parse()

	if *hashPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*hashPassword), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(string(hash))
		return
	}

	logger.Setup(*env)
	slog.Info("서버 초기화 시작", "env", *env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *env); err != nil {
		slog.Error("서버 실행 실패", "error", err)
		os.Exit(1)
	}

	slog.Info("서버 종료 완료", "env", *env)
}

func run(ctx context.Context, env string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("설정 로드 실패: %w", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("데이터베이스 연결 실패: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("데이터베이스 종료 실패", "error", err)
		}
	}()

	if err := validator.RegisterAll(); err != nil {
		return fmt.Errorf("공통 Validator 등록 실패: %w", err)
	}

	engine := bootstrap.NewBootstrap(cfg).SetupEngine()
	router.Setup(engine, cfg, db)

	slog.Info("서버 설정 완료",
		"db_driver", db.Driver(),
		"page_default_limit", cfg.Paging.DefaultLimit,
		"page_max_limit", cfg.Paging.MaxLimit,
	)

	return bootstrap.New(cfg, engine).Run(ctx)
}
