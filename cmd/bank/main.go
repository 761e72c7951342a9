// cmd/bank/main.go

// 本程式提供以 IBAN 識別帳戶的互動式文字選單：建立帳戶、存提款、轉帳、列出與刪除。
// 此檔案負責初始化模組（config, logger, bank, cli），
// 依設定預先建立一個示範帳戶，並在 SIGINT/SIGTERM 時結束 session。

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ibanbank/internal/bank"
	"ibanbank/internal/cli"
	"ibanbank/internal/config"
	"ibanbank/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	// .env 為可選
	if err := godotenv.Load(); err != nil {
		log.Println("bank: no .env file found, relying on system env vars")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("bank: config: %v", err)
	}

	lg, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("bank: logger: %v", err)
	}
	defer lg.Sync()

	// 初始化銀行核心模組
	b := bank.NewBank(bank.WithLogger(lg))

	opts := []cli.Option{cli.WithCurrency(cfg.Currency), cli.WithLogger(lg)}
	if cfg.SeedIBAN != "" {
		var acctOpts []bank.AccountOption
		if cfg.SeedHolder != "" {
			acctOpts = append(acctOpts, bank.WithHolder(cfg.SeedHolder))
		}
		if _, err := b.Create(cfg.SeedIBAN, cfg.SeedBalance, acctOpts...); err != nil {
			lg.Fatal("seed account rejected", "iban", cfg.SeedIBAN, "err", err)
		}
		opts = append(opts, cli.WithAccount(cfg.SeedIBAN))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 讀取 stdin 無法被中斷；收到 SIGINT/SIGTERM 時記錄並直接結束行程
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		cancel()
		lg.Info("signal received, exiting")
		lg.Sync()
		os.Exit(0)
	}()

	if err := cli.New(b, os.Stdin, os.Stdout, opts...).Run(ctx); err != nil {
		lg.Error("session aborted", "err", err)
		lg.Sync()
		os.Exit(1)
	}
}
