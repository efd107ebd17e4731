package detector

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"image"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"sync"

	"gocv.io/x/gocv"

	"github.com/mathan44862/ai-recommendation-system/internal/emotion"
)

// ServiceDetector implements Detector using a Python expression-detection
// subprocess. Frames go out as length-prefixed JPEG, results come back as
// one JSON line per frame.
type ServiceDetector struct {
	config Config
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Reader
	mu     sync.Mutex
	loaded bool
}

// NewServiceDetector creates a subprocess-backed expression detector.
// Model assets are not touched until Load is called.
func NewServiceDetector(config Config) *ServiceDetector {
	return &ServiceDetector{config: config}
}

// Load verifies the model assets, starts the Python service, and waits for
// its ready acknowledgement. A load failure is terminal: the detector stays
// unusable and the caller should not retry.
func (d *ServiceDetector) Load() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.loaded {
		return nil
	}

	if info, err := os.Stat(d.config.ModelDir); err != nil || !info.IsDir() {
		return fmt.Errorf("model assets not found at %s", d.config.ModelDir)
	}

	scriptPath := findServiceScript()
	if scriptPath == "" {
		return fmt.Errorf("expression_service.py not found")
	}

	pythonPath := findVenvPython()
	if pythonPath == "" {
		pythonPath = "python3"
	}

	d.cmd = exec.Command(pythonPath, scriptPath,
		"--models", d.config.ModelDir,
		"--max-faces", strconv.Itoa(d.config.MaxFaces),
		"--min-confidence", fmt.Sprintf("%g", d.config.MinConfidence),
	)

	stdin, err := d.cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("stdin pipe: %w", err)
	}
	stdout, err := d.cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	d.cmd.Stderr = os.Stderr

	if err := d.cmd.Start(); err != nil {
		return fmt.Errorf("start expression service: %w", err)
	}

	d.stdin = stdin
	d.stdout = bufio.NewReader(stdout)

	// The service prints a single ready line once the models are in memory.
	line, err := d.stdout.ReadString('\n')
	if err != nil {
		d.shutdown()
		return fmt.Errorf("expression service failed to load models: %w", err)
	}

	var ready struct {
		Status string `json:"status"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal([]byte(line), &ready); err != nil {
		d.shutdown()
		return fmt.Errorf("parse ready message: %w", err)
	}
	if ready.Status != "ready" {
		d.shutdown()
		return fmt.Errorf("expression service failed to load models: %s", ready.Error)
	}

	d.loaded = true
	return nil
}

// Detect sends a frame to the service and returns the detected faces.
func (d *ServiceDetector) Detect(frame *gocv.Mat) ([]Face, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.loaded {
		return nil, fmt.Errorf("detector models not loaded")
	}

	buf, err := gocv.IMEncode(".jpg", *frame)
	if err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}
	defer buf.Close()

	data := buf.GetBytes()

	// Write length (4 bytes big-endian) + data.
	length := make([]byte, 4)
	binary.BigEndian.PutUint32(length, uint32(len(data)))

	if _, err := d.stdin.Write(length); err != nil {
		return nil, fmt.Errorf("write length: %w", err)
	}
	if _, err := d.stdin.Write(data); err != nil {
		return nil, fmt.Errorf("write data: %w", err)
	}

	line, err := d.stdout.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var response struct {
		Faces []jsonFace `json:"faces"`
	}
	if err := json.Unmarshal([]byte(line), &response); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	result := make([]Face, len(response.Faces))
	for i, f := range response.Faces {
		result[i] = f.toFace()
	}

	return result, nil
}

// Close shuts down the Python process.
func (d *ServiceDetector) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.shutdown()
}

func (d *ServiceDetector) shutdown() error {
	if d.cmd == nil {
		return nil
	}

	if d.stdin != nil {
		d.stdin.Close()
		d.stdin = nil
	}

	err := d.cmd.Wait()
	d.cmd = nil
	d.stdout = nil
	d.loaded = false

	return err
}

// jsonFace is the wire form of a detection result.
type jsonFace struct {
	Box struct {
		X      int `json:"x"`
		Y      int `json:"y"`
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"box"`
	Confidence  float64            `json:"confidence"`
	Expressions map[string]float64 `json:"expressions"`
}

func (f jsonFace) toFace() Face {
	scores := make(emotion.Scores, len(f.Expressions))
	for label, value := range f.Expressions {
		scores[emotion.Label(label)] = value
	}

	return Face{
		Box:         image.Rect(f.Box.X, f.Box.Y, f.Box.X+f.Box.Width, f.Box.Y+f.Box.Height),
		Confidence:  f.Confidence,
		Expressions: scores,
	}
}

// findServiceScript searches common locations for expression_service.py.
func findServiceScript() string {
	candidates := []string{
		filepath.Join("python", "expression_service.py"),
		filepath.Join("..", "python", "expression_service.py"),
		"expression_service.py",
	}

	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			abs, err := filepath.Abs(p)
			if err == nil {
				return abs
			}
			return p
		}
	}

	return ""
}

// findVenvPython returns the project virtualenv python if present.
func findVenvPython() string {
	candidates := []string{
		filepath.Join("python", ".venv", "bin", "python"),
		filepath.Join(".venv", "bin", "python"),
	}

	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
