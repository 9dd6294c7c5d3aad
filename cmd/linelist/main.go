package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"LineList/lines"
	"LineList/list"
)

const usage = "usage: linelist [-batch N] [-sep S] <input-file> <echo|sort|tail|tail-remove>"

var (
	ArgCountErr = errors.New("invalid number of arguments")
	ModeErr     = errors.New("invalid mode")
)

type config struct {
	path  string
	mode  string
	batch int    // tail-remove 每批移除的数量
	sep   string // tail-remove 每批之后输出的分隔行
}

type handler func(cfg *config, w io.Writer) error

var modes = map[string]handler{
	"echo":        echo,
	"sort":        sortLines,
	"tail":        tailLines,
	"tail-remove": tailRemove,
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run 执行一次命令，返回进程退出码；诊断信息只写到 stderr
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "linelist: ", 0)

	cfg, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		logger.Println(err)
		logger.Println(usage)
		return 1
	}

	w := bufio.NewWriter(stdout)
	err = modes[cfg.mode](cfg, w)
	if flushErr := w.Flush(); err == nil {
		err = flushErr
	}
	if err != nil {
		logger.Println(err)
		return 1
	}
	return 0
}

func parseArgs(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}

	fs := flag.NewFlagSet("linelist", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.batch, "batch", list.DefaultBatchSize, "number of items removed per batch in tail-remove mode")
	fs.StringVar(&cfg.sep, "sep", "---", "separator line printed after each tail-remove batch")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() != 2 {
		return nil, fmt.Errorf("%w: %d", ArgCountErr, fs.NArg())
	}
	cfg.path, cfg.mode = fs.Arg(0), fs.Arg(1)

	if _, ok := modes[cfg.mode]; !ok {
		return nil, fmt.Errorf("%w: %s", ModeErr, cfg.mode)
	}
	if cfg.batch <= 0 {
		return nil, fmt.Errorf("%w: %d", list.BatchSizeErr, cfg.batch)
	}
	return cfg, nil
}

// echo 按空白切分，每行输出一个单词
func echo(cfg *config, w io.Writer) error {
	src, err := lines.Open(cfg.path, lines.Words)
	if err != nil {
		return err
	}
	defer src.Close()

	for word, ok := src.Next(); ok; word, ok = src.Next() {
		if _, err := fmt.Fprintln(w, word); err != nil {
			return err
		}
	}
	return src.Err()
}

func sortLines(cfg *config, w io.Writer) error {
	return withList(cfg, (*list.List[string]).InsertSorted, func(l *list.List[string]) error {
		printList(w, l)
		return nil
	})
}

func tailLines(cfg *config, w io.Writer) error {
	return withList(cfg, (*list.List[string]).InsertTail, func(l *list.List[string]) error {
		printList(w, l)
		return nil
	})
}

func tailRemove(cfg *config, w io.Writer) error {
	return withList(cfg, (*list.List[string]).InsertTail, func(l *list.List[string]) error {
		return list.DrainInBatches(l, cfg.batch, func(l *list.List[string]) {
			printList(w, l)
			fmt.Fprintln(w, cfg.sep)
		})
	})
}

// withList 把文件中的每一个非空行插入链表，然后调用 fn，最后清空链表
func withList(cfg *config, insert func(*list.List[string], string) error, fn func(*list.List[string]) error) error {
	src, err := lines.Open(cfg.path, lines.Lines)
	if err != nil {
		return err
	}
	defer src.Close()

	l := list.New(list.Ordered[string](nil))
	defer l.Teardown()

	for line, ok := src.Next(); ok; line, ok = src.Next() {
		if err := insert(l, line); err != nil {
			return err
		}
	}
	if err := src.Err(); err != nil {
		return fmt.Errorf("read %s: %w", cfg.path, err)
	}
	return fn(l)
}

func printList(w io.Writer, l *list.List[string]) {
	l.VisitItems(func(v string) {
		fmt.Fprintln(w, v)
	})
}
