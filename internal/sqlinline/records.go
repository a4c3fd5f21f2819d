package sqlinline

const QInsertGenerationRecord = `--sql c76acf3e-b3e4-4c35-98a2-994e3ad7d93a
insert into generation_records(id, mode, source_text, source_url, params, outputs, created_at)
values ($1::uuid, $2::text, $3::text, nullif($4::text, ''), $5::jsonb, $6::jsonb, $7::timestamptz);
`

const QSelectGenerationRecord = `--sql 4e70486d-5afb-4cd1-a29a-668c69678c7a
select id, mode, source_text, coalesce(source_url, ''), params, outputs, created_at
from generation_records
where id = $1::uuid
limit 1;
`

const QListRecentGenerationRecords = `--sql 9aab82e8-ade6-496b-a181-64519805b170
select id, mode, source_text, coalesce(source_url, ''), params, outputs, created_at
from generation_records
order by created_at desc
limit $1::int;
`
