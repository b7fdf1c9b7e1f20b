package printer

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"
)

// Printer sends raw ESC/POS bytes to a receipt printer.
type Printer interface {
	Print(ctx context.Context, data []byte) error
	// Name identifies the printer in logs.
	Name() string
}

// Config selects a printer. Type is "usb", "network" or "none".
type Config struct {
	Type    string
	USBPath string
	Address string
}

// New builds the printer described by cfg.
func New(cfg Config) (Printer, error) {
	switch cfg.Type {
	case "usb":
		if cfg.USBPath == "" {
			return nil, fmt.Errorf("printer: usb printer needs a device path")
		}
		return &devicePrinter{path: cfg.USBPath}, nil
	case "network":
		if cfg.Address == "" {
			return nil, fmt.Errorf("printer: network printer needs an address")
		}
		return &tcpPrinter{address: cfg.Address, dialTimeout: 5 * time.Second, writeTimeout: 10 * time.Second}, nil
	case "none", "":
		return Discard{}, nil
	default:
		return nil, fmt.Errorf("printer: unknown printer type %q", cfg.Type)
	}
}

// devicePrinter writes to a character device such as /dev/usb/lp0, one open per job.
type devicePrinter struct {
	path string
}

func (p *devicePrinter) Name() string { return "usb:" + p.path }

func (p *devicePrinter) Print(_ context.Context, data []byte) error {
	f, err := os.OpenFile(p.path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("printer: open %s: %w", p.path, err)
	}
	defer f.Close()
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("printer: write %s: %w", p.path, err)
	}
	return nil
}

// tcpPrinter speaks raw port 9100, one connection per job.
type tcpPrinter struct {
	address      string
	dialTimeout  time.Duration
	writeTimeout time.Duration
}

func (p *tcpPrinter) Name() string { return "network:" + p.address }

func (p *tcpPrinter) Print(ctx context.Context, data []byte) error {
	dialer := net.Dialer{Timeout: p.dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", p.address)
	if err != nil {
		return fmt.Errorf("printer: dial %s: %w", p.address, err)
	}
	defer conn.Close()
	_ = conn.SetWriteDeadline(time.Now().Add(p.writeTimeout))
	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("printer: write %s: %w", p.address, err)
	}
	return nil
}

// Discard drops every job. It is used when no printer is attached.
type Discard struct{}

func (Discard) Name() string { return "none" }

func (Discard) Print(context.Context, []byte) error { return nil }
