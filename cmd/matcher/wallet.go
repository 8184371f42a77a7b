package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Show coins and level progress",
	Long: `Show the coin balance, ad-free status and saved level per track
for --profile.

Examples:
  matcher wallet
  matcher wallet --profile alice
  matcher wallet daily
  matcher wallet ad-free`,
	Args: cobra.NoArgs,
	Run:  runWallet,
}

var walletDailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Claim the daily coin reward",
	Args:  cobra.NoArgs,
	Run:   runWalletDaily,
}

var walletAdFreeCmd = &cobra.Command{
	Use:   "ad-free",
	Short: "Turn off intermissions between levels",
	Args:  cobra.NoArgs,
	Run:   runWalletAdFree,
}

func init() {
	walletCmd.AddCommand(walletDailyCmd)
	walletCmd.AddCommand(walletAdFreeCmd)
}

func mustLoadConfigSession() session {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(os.Stderr)
	if !flagVerbose {
		logger = newLogger(io.Discard)
	}
	return openSession(cfg, logger)
}

func runWallet(_ *cobra.Command, _ []string) {
	sess := mustLoadConfigSession()
	defer sess.Close()

	s := sess.engine.Snapshot()
	fmt.Printf("Profile: %s\n", flagProfile)
	fmt.Printf("Coins:   %d\n", s.Coins)
	fmt.Printf("Ad-free: %v\n", s.AdsRemoved)
	if sess.engine.DailyRewardAvailable(time.Now()) {
		fmt.Println("Daily reward is ready: run 'matcher wallet daily'")
	}

	if sess.store == nil {
		return
	}
	progress, err := sess.store.ProfileProgress(flagProfile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving progress: %v\n", err)
		return
	}
	fmt.Println()
	if len(progress) == 0 {
		fmt.Println("No levels cleared yet.")
		return
	}
	fmt.Printf("  %-28s  %s\n", "Track", "Level")
	fmt.Printf("  %-28s  %s\n", "-----", "-----")
	for _, p := range progress {
		fmt.Printf("  %-28s  %d\n", p.ProgressKey, p.Level)
	}
}

func runWalletDaily(_ *cobra.Command, _ []string) {
	sess := mustLoadConfigSession()
	defer sess.Close()

	before := sess.engine.Snapshot().Coins
	if !sess.engine.ClaimDailyReward(time.Now()) {
		fmt.Println("Daily reward already claimed. Come back tomorrow!")
		return
	}
	after := sess.engine.Snapshot().Coins
	fmt.Printf("Claimed %d coins. Balance: %d\n", after-before, after)
}

func runWalletAdFree(_ *cobra.Command, _ []string) {
	sess := mustLoadConfigSession()
	defer sess.Close()

	sess.engine.UnlockAdFree()
	fmt.Println("Intermissions between levels are now off.")
}
