package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dayanaadylkhanova/movie-picker/internal/entity"
	"github.com/dayanaadylkhanova/movie-picker/pkg/logger"
)

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func main() {
	log := logger.NewJSON(logger.LevelFromEnv(getenv("LOG_LEVEL", "info")))
	addr := getenv("SERVER_ADDR", "localhost:8080")

	cmds := os.Args[1:]
	if len(cmds) == 0 {
		cmds = []string{entity.CmdPick}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := (&net.Dialer{}).DialContext(ctx, "tcp", addr)
	if err != nil {
		log.Error("dial failed", "err", err)
		os.Exit(1)
	}
	defer conn.Close()
	if dl, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(dl)
	}

	br := bufio.NewReader(conn)
	bw := bufio.NewWriter(conn)

	var hello entity.Hello
	if err := readJSON(br, &hello); err != nil {
		log.Error("read hello failed", "err", err)
		os.Exit(1)
	}
	log.Debug("connected", "session", hello.Session, "total", hello.Total)

	for _, cmd := range cmds {
		if _, err := bw.WriteString(cmd + "\n"); err != nil {
			log.Error("write command failed", "cmd", cmd, "err", err)
			os.Exit(1)
		}
		if err := bw.Flush(); err != nil {
			log.Error("flush failed", "err", err)
			os.Exit(1)
		}

		var reply entity.Reply
		if err := readJSON(br, &reply); err != nil {
			log.Error("read reply failed", "cmd", cmd, "err", err)
			os.Exit(1)
		}
		render(os.Stdout, reply)
		if reply.Bye {
			return
		}
	}
}

func readJSON(br *bufio.Reader, v any) error {
	line, err := br.ReadString('\n')
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(strings.TrimSpace(line)), v)
}

func render(w io.Writer, r entity.Reply) {
	if r.Error != "" {
		fmt.Fprintf(w, "error: %s\n", r.Error)
	}
	for _, m := range r.Movies {
		mark := " "
		if m.Picked {
			mark = "x"
		}
		fmt.Fprintf(w, "[%s] %s (%d) ⭐ %.1f\n", mark, m.Title, m.Year, m.Rating)
	}
	if r.Picked != nil && !*r.Picked {
		fmt.Fprintln(w, "all movies picked, reset to start over")
	}
	if r.Selected != nil {
		rating := strconv.FormatFloat(r.Selected.Rating, 'f', -1, 64)
		fmt.Fprintf(w, "%s (%d) • Rating: %s/10\n", r.Selected.Title, r.Selected.Year, rating)
	}
	fmt.Fprintf(w, "%d movies left\n", r.Left)
}
